package http

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/cervejaria-api/internal/application/dto"
	"github.com/jhoicas/cervejaria-api/internal/application/usecase"
	"github.com/jhoicas/cervejaria-api/internal/domain"
)

// BeerHandler maneja las peticiones HTTP de cervezas y su stock.
type BeerHandler struct {
	uc *usecase.BeerUseCase
}

// NewBeerHandler construye el handler.
func NewBeerHandler(uc *usecase.BeerUseCase) *BeerHandler {
	return &BeerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cerveza
// @Tags         beers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBeerRequest  true  "Datos de la cerveza"
// @Success      201   {object}  dto.BeerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/beers [post]
func (h *BeerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBeerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cervezas
// @Tags         beers
// @Produce      json
// @Success      200  {array}  dto.BeerResponse
// @Router       /api/v1/beers [get]
func (h *BeerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByName godoc
// @Summary      Obtener cerveza por nombre
// @Tags         beers
// @Produce      json
// @Param        name  path  string  true  "Nombre de la cerveza"
// @Success      200   {object}  dto.BeerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{name} [get]
func (h *BeerHandler) GetByName(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NAME", Message: "name es requerido"})
	}
	out, err := h.uc.FindByName(c.UserContext(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cerveza
// @Tags         beers
// @Param        id   path  int  true  "ID de la cerveza"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{id} [delete]
func (h *BeerHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	if err := h.uc.DeleteByID(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Increment godoc
// @Summary      Incrementar stock
// @Description  Falla con 422 si la cantidad resultante supera el máximo de la cerveza.
// @Tags         beers
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID de la cerveza"
// @Param        body  body  dto.QuantityRequest  true  "Cantidad a sumar"
// @Success      200   {object}  dto.BeerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{id}/increment [patch]
func (h *BeerHandler) Increment(c *fiber.Ctx) error {
	return h.adjust(c, h.uc.Increment)
}

// Decrement godoc
// @Summary      Decrementar stock
// @Description  Falla con 422 si la cantidad resultante queda por debajo de cero.
// @Tags         beers
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID de la cerveza"
// @Param        body  body  dto.QuantityRequest  true  "Cantidad a restar"
// @Success      200   {object}  dto.BeerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{id}/decrement [patch]
func (h *BeerHandler) Decrement(c *fiber.Ctx) error {
	return h.adjust(c, h.uc.Decrement)
}

// StockReport godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/reports/stock.pdf [get]
func (h *BeerHandler) StockReport(c *fiber.Ctx) error {
	pdf, err := h.uc.StockReport(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.pdf"`)
	return c.Send(pdf)
}

type adjustFunc func(ctx context.Context, id int64, amount int) (*dto.BeerResponse, error)

func (h *BeerHandler) adjust(c *fiber.Ctx, fn adjustFunc) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	var in dto.QuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := in.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := fn(c.UserContext(), id, in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeError traduce los errores de dominio a un status distinto por tipo.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_REGISTERED", Message: "ya existe una cerveza con ese nombre"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cerveza no encontrada"})
	case errors.Is(err, domain.ErrNotExists):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_EXISTS", Message: "no existe cerveza con ese id"})
	case errors.Is(err, domain.ErrCapacityExceeded):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CAPACITY_EXCEEDED", Message: "la cantidad debe quedar entre 0 y el máximo de la cerveza"})
	}
	zerolog.Ctx(c.UserContext()).Error().Err(err).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
