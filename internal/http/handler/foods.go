package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Azizul-haque1/plate-share-server/internal/query"
	"github.com/Azizul-haque1/plate-share-server/internal/service"
)

type insertedResponse struct {
	InsertedID string `json:"insertedId"`
}

// ListFoods godoc
// @Summary List food items
// @Description Filtered, sorted and paginated listing. status=all lifts the status filter.
// @Tags foods
// @Produce json
// @Param search query string false "case-insensitive name substring"
// @Param location query string false "exact pickup location"
// @Param status query string false "Available (default), Requested, PickedUp, Removed or all"
// @Param sort query string false "none, expireAsc (default), expireDesc, quantityDesc"
// @Param page query int false "page number, default 1"
// @Param pageSize query int false "page size, default 12, max 100"
// @Success 200 {object} service.FoodListResult
// @Failure 400 {object} errorPayload
// @Router /foods [get]
func ListFoods(svc service.ListingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), query.Params{
			Search:   c.Query("search"),
			Location: c.Query("location"),
			Status:   c.Query("status"),
			Sort:     c.Query("sort"),
			Page:     c.Query("page"),
			PageSize: c.Query("pageSize"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// FeaturedFoods godoc
// @Summary Featured food items
// @Tags foods
// @Produce json
// @Success 200 {array} model.FoodItem
// @Router /featured-foods [get]
func FeaturedFoods(svc service.ListingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Featured(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// MyFoods godoc
// @Summary Food items of one donor
// @Tags foods
// @Produce json
// @Param email query string true "donor email"
// @Success 200 {array} model.FoodItem
// @Failure 400 {object} errorPayload
// @Router /my-food [get]
func MyFoods(svc service.ListingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListByDonor(c.UserContext(), c.Query("email"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetFood godoc
// @Summary Get a food item
// @Tags foods
// @Produce json
// @Param id path string true "food id"
// @Success 200 {object} model.FoodItem
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /foods/{id} [get]
func GetFood(svc service.FoodService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(item)
	}
}

// CreateFood godoc
// @Summary Create a food item
// @Tags foods
// @Accept json
// @Produce json
// @Param body body service.CreateFoodInput true "food item"
// @Success 201 {object} insertedResponse
// @Failure 400 {object} errorPayload
// @Router /foods [post]
func CreateFood(svc service.FoodService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateFoodInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		item, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(insertedResponse{InsertedID: item.ID})
	}
}

// UpdateFood godoc
// @Summary Update a food item
// @Description A body holding only food_status is a status change.
// @Tags foods
// @Accept json
// @Produce json
// @Param id path string true "food id"
// @Param body body service.UpdateFoodInput true "fields to change"
// @Success 200 {object} repository.UpdateResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /foods/{id} [patch]
func UpdateFood(svc service.FoodService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateFoodInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		id := c.Params("id")
		if in.StatusOnly() {
			res, err := svc.UpdateStatus(c.UserContext(), id, *in.Status)
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.JSON(res)
		}
		res, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// DeleteFood godoc
// @Summary Delete a food item
// @Tags foods
// @Produce json
// @Param id path string true "food id"
// @Success 200 {object} repository.DeleteResult
// @Failure 404 {object} errorPayload
// @Router /foods/{id} [delete]
func DeleteFood(svc service.FoodService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// UploadFoodImage godoc
// @Summary Upload a food photo
// @Tags foods
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "food id"
// @Param file formData file true "photo"
// @Success 201 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /foods/{id}/image [post]
func UploadFoodImage(svc service.FoodService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}
		key, err := svc.UploadImage(c.UserContext(), c.Params("id"), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"image_key": key})
	}
}

// FoodImage godoc
// @Summary Redirect to a food photo
// @Tags foods
// @Param id path string true "food id"
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /foods/{id}/image [get]
func FoodImage(svc service.FoodService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.ImageURL(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Redirect(u, fiber.StatusFound)
	}
}
