package services

import (
	"context"
	"log/slog"
	"strings"

	"influencer-api/cache"
	"influencer-api/models"
	"influencer-api/repositories"
)

// AttributeService lists and creates the tags or styles of a user.
type AttributeService[T models.AttributeKind] interface {
	List(ctx context.Context, userID uint, assignedOnly bool) ([]T, error)
	Create(ctx context.Context, userID uint, req models.CreateAttributeRequest) (*T, error)
}

type attributeService[T models.AttributeKind] struct {
	kind  string
	repo  repositories.AttributeRepository[T]
	cache *cache.Cache
	build func(userID uint, name string) T
}

func NewTagService(repo repositories.AttributeRepository[models.Tag], c *cache.Cache) AttributeService[models.Tag] {
	return &attributeService[models.Tag]{kind: "tags", repo: repo, cache: c, build: models.NewTag}
}

func NewStyleService(repo repositories.AttributeRepository[models.Style], c *cache.Cache) AttributeService[models.Style] {
	return &attributeService[models.Style]{kind: "styles", repo: repo, cache: c, build: models.NewStyle}
}

// List serves the full list from the cache when possible. The assigned
// subset changes with every influencer write so it always hits the database.
func (s *attributeService[T]) List(ctx context.Context, userID uint, assignedOnly bool) ([]T, error) {
	if assignedOnly {
		return s.repo.List(ctx, userID, true)
	}

	key := s.cacheKey(userID)
	var items []T
	if hit, err := s.cache.Get(ctx, key, &items); err != nil {
		slog.Warn("cache read failed", "key", key, "error", err)
	} else if hit {
		return items, nil
	}

	items, err := s.repo.List(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, items); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
	return items, nil
}

func (s *attributeService[T]) Create(ctx context.Context, userID uint, req models.CreateAttributeRequest) (*T, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.NewValidationError("name", "This field may not be blank.")
	}

	item := s.build(userID, name)
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, s.cacheKey(userID)); err != nil {
		slog.Warn("cache invalidation failed", "kind", s.kind, "user_id", userID, "error", err)
	}
	return &item, nil
}

func (s *attributeService[T]) cacheKey(userID uint) string {
	return cache.Key(s.kind, userID)
}
