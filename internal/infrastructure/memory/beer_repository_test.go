package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cervejaria-api/internal/domain"
	"github.com/jhoicas/cervejaria-api/internal/domain/entity"
	"github.com/jhoicas/cervejaria-api/internal/infrastructure/memory"
)

func newBeer(name string) *entity.Beer {
	return &entity.Beer{Name: name, Brand: "Ambev", Max: 50, Quantity: 10, Type: entity.BeerTypeLager}
}

func TestBeerRepo_SaveAsignaIDs(t *testing.T) {
	repo := memory.NewBeerRepository()
	ctx := context.Background()

	a, err := repo.Save(ctx, newBeer("Brahma"))
	require.NoError(t, err)
	b, err := repo.Save(ctx, newBeer("Skol"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)

	got, err := repo.FindByName(ctx, "Skol")
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestBeerRepo_DevuelveCopias(t *testing.T) {
	repo := memory.NewBeerRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newBeer("Brahma"))
	require.NoError(t, err)
	saved.Quantity = 99

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity, "modificar la copia no debe alterar lo guardado")
}

func TestBeerRepo_SaveActualiza(t *testing.T) {
	repo := memory.NewBeerRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newBeer("Brahma"))
	require.NoError(t, err)
	saved.Quantity = 40
	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Quantity)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "actualizar no debe duplicar el registro")
}

func TestBeerRepo_SaveNilEsInvalido(t *testing.T) {
	repo := memory.NewBeerRepository()

	got, err := repo.Save(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, got)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBeerRepo_NombreDuplicado(t *testing.T) {
	repo := memory.NewBeerRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, newBeer("Brahma"))
	require.NoError(t, err)
	_, err = repo.Save(ctx, newBeer("Brahma"))
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestBeerRepo_DeleteByID(t *testing.T) {
	repo := memory.NewBeerRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newBeer("Brahma"))
	require.NoError(t, err)
	require.NoError(t, repo.DeleteByID(ctx, saved.ID))

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	byName, err := repo.FindByName(ctx, "Brahma")
	require.NoError(t, err)
	assert.Nil(t, byName)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestBeerRepo_FindAllVacio(t *testing.T) {
	all, err := memory.NewBeerRepository().FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestBeerRepo_SaveConcurrente(t *testing.T) {
	repo := memory.NewBeerRepository()
	ctx := context.Background()
	names := []string{"Brahma", "Skol", "Antarctica", "Bohemia", "Original", "Serramalte"}

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, err := repo.Save(ctx, newBeer(name))
			assert.NoError(t, err)
		}(name)
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i, b := range all {
		assert.Equal(t, int64(i+1), b.ID, "los ids deben ser consecutivos y ordenados")
	}
}
