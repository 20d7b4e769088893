package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cervejaria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BeerUC  *usecase.BeerUseCase
	Metrics *Metrics // opcional; sin él no se expone /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api/v1")

	beers := api.Group("/beers")
	beerHandler := NewBeerHandler(deps.BeerUC)
	beers.Post("/", beerHandler.Create)
	beers.Get("/", beerHandler.List)
	beers.Get("/:name", beerHandler.GetByName)
	beers.Delete("/:id", beerHandler.Delete)
	beers.Patch("/:id/increment", beerHandler.Increment)
	beers.Patch("/:id/decrement", beerHandler.Decrement)

	// Fuera de /beers para no competir con /:name.
	reports := api.Group("/reports")
	reports.Get("/stock.pdf", beerHandler.StockReport)
}
