package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cervejaria-api/internal/application/dto"
	"github.com/jhoicas/cervejaria-api/internal/application/usecase"
	"github.com/jhoicas/cervejaria-api/internal/domain"
	"github.com/jhoicas/cervejaria-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const invalidBeerID int64 = 1

// mockBeerRepo doble de repository.BeerRepository que registra cada llamada.
type mockBeerRepo struct {
	mock.Mock
}

func (m *mockBeerRepo) FindByName(ctx context.Context, name string) (*entity.Beer, error) {
	args := m.Called(ctx, name)
	b, _ := args.Get(0).(*entity.Beer)
	return b, args.Error(1)
}

func (m *mockBeerRepo) FindByID(ctx context.Context, id int64) (*entity.Beer, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*entity.Beer)
	return b, args.Error(1)
}

func (m *mockBeerRepo) Save(ctx context.Context, beer *entity.Beer) (*entity.Beer, error) {
	args := m.Called(ctx, beer)
	b, _ := args.Get(0).(*entity.Beer)
	return b, args.Error(1)
}

func (m *mockBeerRepo) FindAll(ctx context.Context) ([]*entity.Beer, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Beer)
	return list, args.Error(1)
}

func (m *mockBeerRepo) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type fakeReportGenerator struct {
	got []dto.BeerResponse
}

func (g *fakeReportGenerator) GenerateStockReport(_ context.Context, beers []dto.BeerResponse) ([]byte, error) {
	g.got = beers
	return []byte("%PDF-1.3"), nil
}

// defaultBeer cerveza base: quantity=10, max=50.
func defaultBeer() *entity.Beer {
	return &entity.Beer{
		ID:       1,
		Name:     "Brahma",
		Brand:    "Ambev",
		Max:      50,
		Quantity: 10,
		Type:     entity.BeerTypeLager,
	}
}

func defaultRequest() dto.CreateBeerRequest {
	b := defaultBeer()
	return dto.CreateBeerRequest{
		Name:     b.Name,
		Brand:    b.Brand,
		Max:      b.Max,
		Quantity: b.Quantity,
		Type:     string(b.Type),
	}
}

func newUseCase() (*usecase.BeerUseCase, *mockBeerRepo) {
	repo := &mockBeerRepo{}
	return usecase.NewBeerUseCase(repo, nil), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / FindByName / ListAll
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NombreNuevoSeRegistra(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	in := defaultRequest()

	repo.On("FindByName", ctx, in.Name).Return(nil, nil).Once()
	repo.On("Save", ctx, mock.MatchedBy(func(b *entity.Beer) bool {
		return b.ID == 0 && b.Name == in.Name && b.Quantity == in.Quantity && b.Max == in.Max
	})).Return(defaultBeer(), nil).Once()

	out, err := uc.Create(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ID, "el id lo asigna el repositorio")
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Brand, out.Brand)
	assert.Equal(t, in.Quantity, out.Quantity)
	assert.Equal(t, in.Max, out.Max)
	assert.Equal(t, in.Type, out.Type)
	repo.AssertExpectations(t)
}

func TestCreate_NombreDuplicadoFalla(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	in := defaultRequest()

	repo.On("FindByName", ctx, in.Name).Return(defaultBeer(), nil).Once()

	_, err := uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreate_ErrorDeRepositorioSePropaga(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	boom := errors.New("conexión rechazada")

	repo.On("FindByName", ctx, "Brahma").Return(nil, boom).Once()

	_, err := uc.Create(ctx, defaultRequest())
	assert.ErrorIs(t, err, boom)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestFindByName_Existente(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	repo.On("FindByName", ctx, "Brahma").Return(defaultBeer(), nil).Once()

	out, err := uc.FindByName(ctx, "Brahma")
	require.NoError(t, err)
	assert.Equal(t, dto.BeerResponse{ID: 1, Name: "Brahma", Brand: "Ambev", Max: 50, Quantity: 10, Type: "LAGER"}, *out)
}

func TestFindByName_InexistenteFalla(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	repo.On("FindByName", ctx, "Brahma").Return(nil, nil).Once()

	out, err := uc.FindByName(ctx, "Brahma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}

func TestListAll_DevuelveCervezas(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	repo.On("FindAll", ctx).Return([]*entity.Beer{defaultBeer()}, nil).Once()
	repo.On("FindByName", ctx, "Brahma").Return(defaultBeer(), nil).Once()

	list, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	byName, err := uc.FindByName(ctx, "Brahma")
	require.NoError(t, err)
	assert.Equal(t, *byName, list[0], "FindByName y ListAll deben coincidir")
}

func TestListAll_RepositorioVacioDevuelveListaVacia(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	repo.On("FindAll", ctx).Return(nil, nil).Once()

	list, err := uc.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list, "la lista vacía no debe ser nil")
	assert.Empty(t, list)
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteByID
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteByID_IDValidoElimina(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(1)).Return(defaultBeer(), nil).Once()
	repo.On("DeleteByID", ctx, int64(1)).Return(nil).Once()

	require.NoError(t, uc.DeleteByID(ctx, 1))
	repo.AssertNumberOfCalls(t, "FindByID", 1)
	repo.AssertNumberOfCalls(t, "DeleteByID", 1)
}

func TestDeleteByID_IDInexistenteNoElimina(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	repo.On("FindByID", ctx, invalidBeerID).Return(nil, nil).Once()

	err := uc.DeleteByID(ctx, invalidBeerID)
	assert.ErrorIs(t, err, domain.ErrNotExists)
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Increment / Decrement
// ──────────────────────────────────────────────────────────────────────────────

func TestIncrement_SumaAlStock(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	beer := defaultBeer()

	repo.On("FindByID", ctx, beer.ID).Return(beer, nil).Once()
	repo.On("Save", ctx, beer).Return(beer, nil).Once()

	out, err := uc.Increment(ctx, beer.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 40, out.Quantity)
	assert.Less(t, out.Quantity, out.Max)
	repo.AssertExpectations(t)
}

func TestIncrement_HastaExactamenteElMaximo(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	beer := defaultBeer()
	beer.Quantity, beer.Max = 70, 100

	repo.On("FindByID", ctx, beer.ID).Return(beer, nil).Once()
	repo.On("Save", ctx, beer).Return(beer, nil).Once()

	out, err := uc.Increment(ctx, beer.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Quantity)
}

func TestIncrement_SuperaElMaximoFalla(t *testing.T) {
	cases := map[string]struct {
		quantity, max, amount int
	}{
		"por uno":           {70, 100, 31},
		"cantidad original": {10, 50, 50},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			uc, repo := newUseCase()
			ctx := context.Background()
			beer := defaultBeer()
			beer.Quantity, beer.Max = tc.quantity, tc.max

			repo.On("FindByID", ctx, beer.ID).Return(beer, nil).Once()

			out, err := uc.Increment(ctx, beer.ID, tc.amount)
			assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
			assert.Nil(t, out)
			assert.Equal(t, tc.quantity, beer.Quantity, "un ajuste rechazado no modifica la cerveza")
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestIncrement_IDInexistenteFalla(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	repo.On("FindByID", ctx, invalidBeerID).Return(nil, nil).Once()

	_, err := uc.Increment(ctx, invalidBeerID, 30)
	assert.ErrorIs(t, err, domain.ErrNotExists)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDecrement_RestaDelStock(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	beer := defaultBeer()

	repo.On("FindByID", ctx, beer.ID).Return(beer, nil).Once()
	repo.On("Save", ctx, beer).Return(beer, nil).Once()

	out, err := uc.Decrement(ctx, beer.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Quantity)
	assert.Greater(t, out.Quantity, 0)
}

func TestDecrement_HastaStockVacio(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()
	beer := defaultBeer()

	repo.On("FindByID", ctx, beer.ID).Return(beer, nil).Once()
	repo.On("Save", ctx, beer).Return(beer, nil).Once()

	out, err := uc.Decrement(ctx, beer.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
}

func TestDecrement_BajoCeroFalla(t *testing.T) {
	for _, amount := range []int{11, 80} {
		uc, repo := newUseCase()
		ctx := context.Background()
		beer := defaultBeer()

		repo.On("FindByID", ctx, beer.ID).Return(beer, nil).Once()

		_, err := uc.Decrement(ctx, beer.ID, amount)
		assert.ErrorIs(t, err, domain.ErrCapacityExceeded, "amount=%d", amount)
		assert.Equal(t, 10, beer.Quantity)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	}
}

func TestDecrement_IDInexistenteFalla(t *testing.T) {
	uc, repo := newUseCase()
	ctx := context.Background()

	repo.On("FindByID", ctx, invalidBeerID).Return(nil, nil).Once()

	_, err := uc.Decrement(ctx, invalidBeerID, 10)
	assert.ErrorIs(t, err, domain.ErrNotExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// StockReport
// ──────────────────────────────────────────────────────────────────────────────

func TestStockReport_UsaElListadoCompleto(t *testing.T) {
	repo := &mockBeerRepo{}
	gen := &fakeReportGenerator{}
	uc := usecase.NewBeerUseCase(repo, gen)
	ctx := context.Background()

	repo.On("FindAll", ctx).Return([]*entity.Beer{defaultBeer()}, nil).Once()

	pdf, err := uc.StockReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	require.Len(t, gen.got, 1)
	assert.Equal(t, "Brahma", gen.got[0].Name)
}

func TestStockReport_SinGeneradorFalla(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.StockReport(context.Background())
	assert.Error(t, err)
}
