package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Azizul-haque1/plate-share-server/internal/repository"
)

// predicates accumulates positional SQL conditions and their arguments.
type predicates struct {
	conds []string
	args  []any
}

// add appends a condition whose single %d verb becomes the next placeholder number.
func (p *predicates) add(cond string, v any) {
	p.args = append(p.args, v)
	p.conds = append(p.conds, fmt.Sprintf(cond, len(p.args)))
}

func (p *predicates) where() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}

func foodPredicates(f repository.FoodFilter) *predicates {
	p := &predicates{}
	if f.NameContains != "" {
		p.add(`food_name ILIKE $%d ESCAPE '\'`, "%"+escapeLike(f.NameContains)+"%")
	}
	if f.PickupLocation != "" {
		p.add("pickup_location = $%d", f.PickupLocation)
	}
	if f.Status != nil {
		p.add("food_status = $%d", string(*f.Status))
	}
	if f.DonatorEmail != "" {
		p.add("donator_email = $%d", f.DonatorEmail)
	}
	return p
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// orderBy renders a whitelisted ORDER BY clause. id is always the last key.
func orderBy(s repository.SortSpec) string {
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	switch s.Field {
	case repository.SortByExpireDate:
		return " ORDER BY expire_date " + dir + ", id ASC"
	case repository.SortByQuantity:
		return " ORDER BY food_quantity " + dir + ", id ASC"
	default:
		return " ORDER BY id " + dir
	}
}

// paginate appends LIMIT/OFFSET placeholders to args.
func paginate(pq repository.PageQuery, args []any) (string, []any) {
	var sb strings.Builder
	if pq.Limit > 0 {
		args = append(args, pq.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if pq.Offset > 0 {
		args = append(args, pq.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}
	return sb.String(), args
}

// validUUID is the PostgreSQL id format: every table keys on UUID.
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
