package usecase

import (
	"context"

	"github.com/jhoicas/cervejaria-api/internal/application/dto"
)

// StockReportGenerator puerto para renderizar el reporte de stock (implementado en infrastructure/pdf).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, beers []dto.BeerResponse) ([]byte, error)
}
