package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/cervejaria-api/internal/domain"
	"github.com/jhoicas/cervejaria-api/internal/domain/entity"
	"github.com/jhoicas/cervejaria-api/internal/domain/repository"
)

var _ repository.BeerRepository = (*BeerRepo)(nil)

// BeerRepo repositorio en memoria. Devuelve copias para que el caller no altere el estado guardado.
type BeerRepo struct {
	mu     sync.RWMutex
	beers  map[int64]*entity.Beer
	byName map[string]int64
	nextID int64
}

func NewBeerRepository() *BeerRepo {
	return &BeerRepo{
		beers:  make(map[int64]*entity.Beer),
		byName: make(map[string]int64),
	}
}

func (r *BeerRepo) FindByName(ctx context.Context, name string) (*entity.Beer, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return nil, nil
	}
	return cloneBeer(r.beers[id]), nil
}

func (r *BeerRepo) FindByID(ctx context.Context, id int64) (*entity.Beer, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneBeer(r.beers[id]), nil
}

// Save inserta cuando ID == 0 (asignando el siguiente id) y reemplaza en otro caso.
// Un nombre ya usado por otra cerveza devuelve domain.ErrAlreadyRegistered, como el UNIQUE de SQL.
func (r *BeerRepo) Save(ctx context.Context, beer *entity.Beer) (*entity.Beer, error) {
	_ = ctx
	if beer == nil {
		return nil, fmt.Errorf("guardar cerveza nil: %w", domain.ErrInvalidInput)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.byName[beer.Name]; ok && owner != beer.ID {
		return nil, domain.ErrAlreadyRegistered
	}
	stored := cloneBeer(beer)
	if stored.ID == 0 {
		r.nextID++
		stored.ID = r.nextID
	} else if prev, ok := r.beers[stored.ID]; ok && prev.Name != stored.Name {
		delete(r.byName, prev.Name)
	}
	r.beers[stored.ID] = stored
	r.byName[stored.Name] = stored.ID
	return cloneBeer(stored), nil
}

// FindAll devuelve las cervezas ordenadas por id.
func (r *BeerRepo) FindAll(ctx context.Context) ([]*entity.Beer, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*entity.Beer, 0, len(r.beers))
	for _, b := range r.beers {
		list = append(list, cloneBeer(b))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *BeerRepo) DeleteByID(ctx context.Context, id int64) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.beers[id]; ok {
		delete(r.byName, b.Name)
		delete(r.beers, id)
	}
	return nil
}

func cloneBeer(b *entity.Beer) *entity.Beer {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}
