package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Azizul-haque1/plate-share-server/internal/http/middleware"
	"github.com/Azizul-haque1/plate-share-server/internal/service"
)

// Services are the use cases the routes dispatch to.
type Services struct {
	Listing  service.ListingService
	Foods    service.FoodService
	Requests service.RequestService
}

// RegisterRoutes attaches every HTTP route to app. A nil gatherer serves the default registry.
func RegisterRoutes(app *fiber.App, db Pinger, gatherer prometheus.Gatherer, svcs Services) {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	app.Get("/", Root())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	app.Get("/foods", ListFoods(svcs.Listing))
	app.Post("/foods", CreateFood(svcs.Foods))
	app.Get("/foods/:id", GetFood(svcs.Foods))
	app.Patch("/foods/:id", UpdateFood(svcs.Foods))
	app.Delete("/foods/:id", DeleteFood(svcs.Foods))
	app.Post("/foods/:id/image", UploadFoodImage(svcs.Foods))
	app.Get("/foods/:id/image", FoodImage(svcs.Foods))
	app.Get("/featured-foods", FeaturedFoods(svcs.Listing))
	app.Get("/my-food", MyFoods(svcs.Listing))

	app.Post("/food-request", CreateRequest(svcs.Requests))
	app.Get("/food-request", ListUserRequests(svcs.Requests))
	app.Get("/food-request/:foodId", ListFoodRequests(svcs.Requests))
	app.Patch("/food-request/:id", UpdateRequestStatus(svcs.Requests))
	app.Delete("/food-request/:id", DeleteRequest(svcs.Requests))
}
