// Package model holds the food item and food request records shared across layers.
package model

import "strings"

// FoodStatus is the availability state of a food item.
// The wire format is an open string; ParseFoodStatus is the only way in.
type FoodStatus string

const (
	FoodAvailable FoodStatus = "Available"
	FoodRequested FoodStatus = "Requested"
	FoodPickedUp  FoodStatus = "PickedUp"
	FoodRemoved   FoodStatus = "Removed"
)

var foodStatuses = map[string]FoodStatus{
	"available": FoodAvailable,
	"requested": FoodRequested,
	"pickedup":  FoodPickedUp,
	"removed":   FoodRemoved,
}

// ParseFoodStatus matches s case-insensitively, ignoring spaces, dashes and underscores,
// so "Picked Up", "picked_up" and "PickedUp" are the same value.
func ParseFoodStatus(s string) (FoodStatus, bool) {
	st, ok := foodStatuses[normalize(s)]
	return st, ok
}

// RequestStatus is the state of a food request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "Pending"
	RequestAccepted RequestStatus = "Accepted"
	RequestRejected RequestStatus = "Rejected"
)

var requestStatuses = map[string]RequestStatus{
	"pending":  RequestPending,
	"accepted": RequestAccepted,
	// Older clients send "Completed" for an accepted request.
	"completed": RequestAccepted,
	"rejected":  RequestRejected,
}

// ParseRequestStatus matches s case-insensitively.
func ParseRequestStatus(s string) (RequestStatus, bool) {
	st, ok := requestStatuses[normalize(s)]
	return st, ok
}

// Terminal reports whether no transition leaves st.
func (st RequestStatus) Terminal() bool {
	return st == RequestAccepted || st == RequestRejected
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
