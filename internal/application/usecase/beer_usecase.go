package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/cervejaria-api/internal/application/dto"
	"github.com/jhoicas/cervejaria-api/internal/domain"
	"github.com/jhoicas/cervejaria-api/internal/domain/entity"
	"github.com/jhoicas/cervejaria-api/internal/domain/inventory"
	"github.com/jhoicas/cervejaria-api/internal/domain/repository"
)

// BeerUseCase reglas de negocio del stock de cervezas. No guarda estado entre llamadas:
// todo el estado vive en el repositorio, por lo que puede usarse como singleton.
//
// No hay bloqueo entre la lectura y la escritura de Increment/Decrement; dos ajustes
// concurrentes sobre el mismo id pueden pisarse (depende de las garantías del repositorio).
type BeerUseCase struct {
	repo   repository.BeerRepository
	report StockReportGenerator
}

// NewBeerUseCase construye el caso de uso. report puede ser nil si no se expone el reporte PDF.
func NewBeerUseCase(repo repository.BeerRepository, report StockReportGenerator) *BeerUseCase {
	return &BeerUseCase{repo: repo, report: report}
}

// Create registra una cerveza nueva. Falla con domain.ErrAlreadyRegistered si el nombre ya existe.
func (uc *BeerUseCase) Create(ctx context.Context, in dto.CreateBeerRequest) (*dto.BeerResponse, error) {
	existing, err := uc.repo.FindByName(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("buscar cerveza por nombre: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyRegistered
	}
	saved, err := uc.repo.Save(ctx, toBeerEntity(in))
	if err != nil {
		return nil, fmt.Errorf("guardar cerveza: %w", err)
	}
	zerolog.Ctx(ctx).Info().
		Int64("beer_id", saved.ID).
		Str("name", saved.Name).
		Msg("cerveza registrada")
	return toBeerResponse(saved), nil
}

// FindByName obtiene una cerveza por nombre. Falla con domain.ErrNotFound si no existe.
func (uc *BeerUseCase) FindByName(ctx context.Context, name string) (*dto.BeerResponse, error) {
	beer, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("buscar cerveza por nombre: %w", err)
	}
	if beer == nil {
		return nil, domain.ErrNotFound
	}
	return toBeerResponse(beer), nil
}

// ListAll lista todas las cervezas en el orden del repositorio. Nunca devuelve nil.
func (uc *BeerUseCase) ListAll(ctx context.Context) ([]dto.BeerResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar cervezas: %w", err)
	}
	items := make([]dto.BeerResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBeerResponse(b))
	}
	return items, nil
}

// DeleteByID elimina una cerveza. Falla con domain.ErrNotExists sin llamar a DeleteByID si no existe.
func (uc *BeerUseCase) DeleteByID(ctx context.Context, id int64) error {
	if _, err := uc.verifyExists(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("eliminar cerveza: %w", err)
	}
	zerolog.Ctx(ctx).Info().Int64("beer_id", id).Msg("cerveza eliminada")
	return nil
}

// Increment suma amount al stock. Llegar exactamente al máximo está permitido;
// superarlo devuelve domain.ErrCapacityExceeded sin escribir.
func (uc *BeerUseCase) Increment(ctx context.Context, id int64, amount int) (*dto.BeerResponse, error) {
	beer, err := uc.verifyExists(ctx, id)
	if err != nil {
		return nil, err
	}
	projected, err := inventory.ProjectIncrement(beer.Quantity, beer.Max, amount)
	if err != nil {
		zerolog.Ctx(ctx).Debug().
			Int64("beer_id", id).
			Int("quantity", beer.Quantity).
			Int("max", beer.Max).
			Int("amount", amount).
			Msg("incremento rechazado")
		return nil, err
	}
	return uc.saveQuantity(ctx, beer, projected)
}

// Decrement resta amount del stock. Llegar exactamente a 0 está permitido;
// bajar de cero devuelve domain.ErrCapacityExceeded sin escribir.
func (uc *BeerUseCase) Decrement(ctx context.Context, id int64, amount int) (*dto.BeerResponse, error) {
	beer, err := uc.verifyExists(ctx, id)
	if err != nil {
		return nil, err
	}
	projected, err := inventory.ProjectDecrement(beer.Quantity, amount)
	if err != nil {
		zerolog.Ctx(ctx).Debug().
			Int64("beer_id", id).
			Int("quantity", beer.Quantity).
			Int("amount", amount).
			Msg("decremento rechazado")
		return nil, err
	}
	return uc.saveQuantity(ctx, beer, projected)
}

// StockReport genera el PDF con el stock actual de todas las cervezas.
func (uc *BeerUseCase) StockReport(ctx context.Context) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("reporte de stock no configurado")
	}
	items, err := uc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateStockReport(ctx, items)
}

func (uc *BeerUseCase) verifyExists(ctx context.Context, id int64) (*entity.Beer, error) {
	beer, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("buscar cerveza por id: %w", err)
	}
	if beer == nil {
		return nil, domain.ErrNotExists
	}
	return beer, nil
}

func (uc *BeerUseCase) saveQuantity(ctx context.Context, beer *entity.Beer, quantity int) (*dto.BeerResponse, error) {
	previous := beer.Quantity
	beer.Quantity = quantity
	saved, err := uc.repo.Save(ctx, beer)
	if err != nil {
		return nil, fmt.Errorf("guardar stock: %w", err)
	}
	zerolog.Ctx(ctx).Debug().
		Int64("beer_id", saved.ID).
		Int("from", previous).
		Int("to", saved.Quantity).
		Msg("stock actualizado")
	return toBeerResponse(saved), nil
}

func toBeerEntity(in dto.CreateBeerRequest) *entity.Beer {
	return &entity.Beer{
		Name:     in.Name,
		Brand:    in.Brand,
		Max:      in.Max,
		Quantity: in.Quantity,
		Type:     entity.BeerType(in.Type),
	}
}

func toBeerResponse(b *entity.Beer) *dto.BeerResponse {
	if b == nil {
		return nil
	}
	return &dto.BeerResponse{
		ID:       b.ID,
		Name:     b.Name,
		Brand:    b.Brand,
		Max:      b.Max,
		Quantity: b.Quantity,
		Type:     string(b.Type),
	}
}
