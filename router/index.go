package router

import (
	"tour_manager/handler"
	"tour_manager/middleware"
	"tour_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	// Client
	tour := v1.Group("/tours", logger.New())
	tour.Get("/", validate.TourFilter(), handler.GetTours)
	tour.Get("/featured", handler.GetFeaturedTours)
	tour.Get("/flash-sale", handler.GetFlashSaleTours)
	tour.Get("/:slug", handler.GetTourBySlug)

	destination := v1.Group("/destinations", logger.New())
	destination.Get("/tree", handler.GetDestinationTree)
	destination.Get("/", handler.GetDestinations)

	order := v1.Group("/orders", logger.New())
	order.Post("/book-tour", middleware.OptionalJWT(), validate.BookTour(), handler.BookTour)
	order.Get("/:orderCode", handler.GetOrderDetail)

	// Admin
	admin := v1.Group("/admin", logger.New(), middleware.Protected())

	adminTour := admin.Group("/tours")
	adminTour.Get("/", validate.TourFilter(), handler.GetAllTours)
	adminTour.Get("/search", validate.TourFilter(), handler.SearchTours)
	adminTour.Get("/expired", validate.TourFilter(), handler.GetExpiredTours)
	adminTour.Get("/expiring-soon", validate.TourFilter(), handler.GetExpiringSoonTours)
	adminTour.Post("/", validate.CreateTour(), handler.CreateTour)
	adminTour.Put("/:tourId", validate.EditTour("tourId"), handler.EditTour)
	adminTour.Delete("/", validate.Delete(), handler.DeleteTours)
	adminTour.Patch("/:tourId/status", validate.GetById("tourId"), handler.ToggleTourStatus)
	adminTour.Patch("/:tourId/featured", validate.GetById("tourId"), handler.ToggleTourFeatured)

	adminTourDetail := admin.Group("/tour-details")
	adminTourDetail.Post("/", validate.CreateTourDetail(), handler.CreateTourDetail)
	adminTourDetail.Put("/", validate.EditTourDetail(), handler.EditTourDetail)
	adminTourDetail.Delete("/", validate.Delete(), handler.DeleteTourDetails)

	adminDestination := admin.Group("/destinations")
	adminDestination.Post("/", validate.CreateDestination(), handler.CreateDestination)
	adminDestination.Put("/:destinationId", validate.EditDestination("destinationId"), handler.EditDestination)
	adminDestination.Delete("/", validate.Delete(), handler.DeleteDestinations)

	adminOrder := admin.Group("/orders")
	adminOrder.Get("/", validate.OrderFilter(), handler.GetOrders)
	adminOrder.Get("/:orderCode", handler.GetOrderDetail)
	adminOrder.Patch("/:orderId/status", validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	adminOrder.Delete("/", validate.Delete(), handler.DeleteOrders)

	adminTransaction := admin.Group("/transactions")
	adminTransaction.Patch("/:transactionId/status", validate.GetById("transactionId"), validate.UpdateTransactionStatus(), handler.UpdateTransactionStatus)
}
