package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/cervejaria-api/internal/domain"
	"github.com/jhoicas/cervejaria-api/internal/domain/entity"
	"github.com/jhoicas/cervejaria-api/internal/domain/repository"
)

var _ repository.BeerRepository = (*BeerRepo)(nil)

// Claves:
//
//	beer:seq          contador de ids
//	beer:ids          sorted set de ids (score = id) para listar en orden
//	beer:<id>         hash con los campos de la cerveza
//	beer:name:<name>  índice nombre -> id
const (
	seqKey        = "beer:seq"
	idsKey        = "beer:ids"
	beerKeyPrefix = "beer:"
	nameKeyPrefix = "beer:name:"
)

type beerHash struct {
	ID       int64  `redis:"id"`
	Name     string `redis:"name"`
	Brand    string `redis:"brand"`
	Max      int    `redis:"max"`
	Quantity int    `redis:"quantity"`
	Type     string `redis:"type"`
}

// BeerRepo implementación de BeerRepository sobre Redis.
type BeerRepo struct {
	client *redis.Client
}

func NewBeerRepository(client *redis.Client) *BeerRepo {
	return &BeerRepo{client: client}
}

func beerKey(id int64) string { return beerKeyPrefix + strconv.FormatInt(id, 10) }
func nameKey(name string) string { return nameKeyPrefix + name }

func (r *BeerRepo) FindByName(ctx context.Context, name string) (*entity.Beer, error) {
	id, err := r.client.Get(ctx, nameKey(name)).Int64()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get beer id by name: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *BeerRepo) FindByID(ctx context.Context, id int64) (*entity.Beer, error) {
	cmd := r.client.HGetAll(ctx, beerKey(id))
	return decodeBeer(cmd)
}

// Save reserva el nombre con SETNX antes de escribir el hash; si otro id ya lo tiene devuelve
// domain.ErrAlreadyRegistered.
func (r *BeerRepo) Save(ctx context.Context, beer *entity.Beer) (*entity.Beer, error) {
	saved := *beer
	previousName := ""
	if saved.ID == 0 {
		id, err := r.client.Incr(ctx, seqKey).Result()
		if err != nil {
			return nil, fmt.Errorf("next beer id: %w", err)
		}
		saved.ID = id
	} else {
		name, err := r.client.HGet(ctx, beerKey(saved.ID), "name").Result()
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotExists
		}
		if err != nil {
			return nil, fmt.Errorf("get beer name: %w", err)
		}
		previousName = name
	}

	if saved.Name != previousName {
		ok, err := r.client.SetNX(ctx, nameKey(saved.Name), saved.ID, 0).Result()
		if err != nil {
			return nil, fmt.Errorf("reserve beer name: %w", err)
		}
		if !ok {
			return nil, domain.ErrAlreadyRegistered
		}
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, beerKey(saved.ID), map[string]any{
			"id":       saved.ID,
			"name":     saved.Name,
			"brand":    saved.Brand,
			"max":      saved.Max,
			"quantity": saved.Quantity,
			"type":     string(saved.Type),
		})
		pipe.ZAdd(ctx, idsKey, redis.Z{Score: float64(saved.ID), Member: saved.ID})
		if previousName != "" && previousName != saved.Name {
			pipe.Del(ctx, nameKey(previousName))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save beer: %w", err)
	}
	return &saved, nil
}

func (r *BeerRepo) FindAll(ctx context.Context) ([]*entity.Beer, error) {
	ids, err := r.client.ZRange(ctx, idsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list beer ids: %w", err)
	}
	list := make([]*entity.Beer, 0, len(ids))
	if len(ids) == 0 {
		return list, nil
	}

	cmds := make([]*redis.MapStringStringCmd, 0, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			cmds = append(cmds, pipe.HGetAll(ctx, beerKeyPrefix+id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load beers: %w", err)
	}
	for _, cmd := range cmds {
		b, err := decodeBeer(cmd)
		if err != nil {
			return nil, err
		}
		if b != nil {
			list = append(list, b)
		}
	}
	return list, nil
}

func (r *BeerRepo) DeleteByID(ctx context.Context, id int64) error {
	name, err := r.client.HGet(ctx, beerKey(id), "name").Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get beer name: %w", err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, beerKey(id), nameKey(name))
		pipe.ZRem(ctx, idsKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete beer: %w", err)
	}
	return nil
}

// decodeBeer devuelve (nil, nil) cuando el hash no existe.
func decodeBeer(cmd *redis.MapStringStringCmd) (*entity.Beer, error) {
	fields, err := cmd.Result()
	if err != nil {
		return nil, fmt.Errorf("get beer: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	var h beerHash
	if err := cmd.Scan(&h); err != nil {
		return nil, fmt.Errorf("decode beer: %w", err)
	}
	return &entity.Beer{
		ID:       h.ID,
		Name:     h.Name,
		Brand:    h.Brand,
		Max:      h.Max,
		Quantity: h.Quantity,
		Type:     entity.BeerType(h.Type),
	}, nil
}
