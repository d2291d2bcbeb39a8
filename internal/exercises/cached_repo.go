package exercises

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour            = 60 * 60
	catalogCacheExpire = oneHour * 12 // the catalog rarely changes

	catalogListCacheKey = "catalog::list"
)

type catalogRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Get(ctx context.Context, id int) (*Exercise, error)
	List(ctx context.Context) ([]Exercise, error)
	Update(ctx context.Context, exercise *Exercise) error
	Delete(ctx context.Context, id int) error
}

// CachedRepo is a freecache read-through wrapper around the catalog repo.
// The catalog is small and hot, every plan page reads it.
type CachedRepo struct {
	repo  catalogRepo
	cache *freecache.Cache
}

func NewCachedRepo(repo catalogRepo) *CachedRepo {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte
	return &CachedRepo{
		repo:  repo,
		cache: freecache.NewCache(cacheSize),
	}
}

func (r *CachedRepo) Add(ctx context.Context, exercise Exercise) (*Exercise, error) {
	added, err := r.repo.Add(ctx, exercise)
	if err != nil {
		return nil, err
	}
	r.invalidateList()
	return added, nil
}

func (r *CachedRepo) Get(ctx context.Context, id int) (*Exercise, error) {
	cacheKey := []byte(fmt.Sprintf("catalog::%d", id))
	if cachedBytes, err := r.cache.Get(cacheKey); err == nil {
		var e Exercise
		if err := json.Unmarshal(cachedBytes, &e); err == nil {
			return &e, nil
		}
		log.Errorf("failed to unmarshal cached exercise %d: %s", id, err)
	}

	e, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if eBytes, err := json.Marshal(e); err == nil {
		if err := r.cache.Set(cacheKey, eBytes, catalogCacheExpire); err != nil {
			log.Errorf("failed to cache exercise %d: %s", id, err)
		}
	}

	return e, nil
}

func (r *CachedRepo) List(ctx context.Context) ([]Exercise, error) {
	if cachedBytes, err := r.cache.Get([]byte(catalogListCacheKey)); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(cachedBytes, &exercises); err == nil {
			return exercises, nil
		}
		log.Errorf("failed to unmarshal cached exercise catalog: %s", err)
	}

	exercises, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if exercisesBytes, err := json.Marshal(exercises); err == nil {
		if err := r.cache.Set([]byte(catalogListCacheKey), exercisesBytes, catalogCacheExpire); err != nil {
			log.Errorf("failed to cache exercise catalog: %s", err)
		}
	}

	return exercises, nil
}

func (r *CachedRepo) Update(ctx context.Context, exercise *Exercise) error {
	if err := r.repo.Update(ctx, exercise); err != nil {
		return err
	}
	r.cache.Del([]byte(fmt.Sprintf("catalog::%d", exercise.ID)))
	r.invalidateList()
	return nil
}

func (r *CachedRepo) Delete(ctx context.Context, id int) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.cache.Del([]byte(fmt.Sprintf("catalog::%d", id)))
	r.invalidateList()
	return nil
}

func (r *CachedRepo) invalidateList() {
	r.cache.Del([]byte(catalogListCacheKey))
}
