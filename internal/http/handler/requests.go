package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Azizul-haque1/plate-share-server/internal/service"
)

type statusBody struct {
	Status string `json:"status"`
}

// CreateRequest godoc
// @Summary File a food request
// @Description foodId is stored as given and not checked against the foods collection.
// @Tags requests
// @Accept json
// @Produce json
// @Param body body service.CreateRequestInput true "request"
// @Success 201 {object} insertedResponse
// @Failure 400 {object} errorPayload
// @Router /food-request [post]
func CreateRequest(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateRequestInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		req, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(insertedResponse{InsertedID: req.ID})
	}
}

// ListUserRequests godoc
// @Summary Requests filed by a user
// @Description Without email every request is returned.
// @Tags requests
// @Produce json
// @Param email query string false "requester email"
// @Success 200 {array} model.FoodRequest
// @Router /food-request [get]
func ListUserRequests(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqs, err := svc.ListByUser(c.UserContext(), c.Query("email"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(reqs)
	}
}

// ListFoodRequests godoc
// @Summary Requests against one food item
// @Tags requests
// @Produce json
// @Param foodId path string true "food id"
// @Success 200 {array} model.FoodRequest
// @Router /food-request/{foodId} [get]
func ListFoodRequests(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqs, err := svc.ListByFood(c.UserContext(), c.Params("foodId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(reqs)
	}
}

// UpdateRequestStatus godoc
// @Summary Change a request's status
// @Description Only Pending requests move. The food item is not touched.
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "request id"
// @Param body body statusBody true "new status"
// @Success 200 {object} repository.UpdateResult
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /food-request/{id} [patch]
func UpdateRequestStatus(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body statusBody
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}
		res, err := svc.UpdateStatus(c.UserContext(), c.Params("id"), body.Status)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// DeleteRequest godoc
// @Summary Delete a request
// @Tags requests
// @Produce json
// @Param id path string true "request id"
// @Success 200 {object} repository.DeleteResult
// @Failure 404 {object} errorPayload
// @Router /food-request/{id} [delete]
func DeleteRequest(svc service.RequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
