package repositories

import (
	"context"
	"fmt"

	"influencer-api/models"

	"gorm.io/gorm"
)

type AttributeRepository[T models.AttributeKind] interface {
	Create(ctx context.Context, item *T) error
	List(ctx context.Context, userID uint, assignedOnly bool) ([]T, error)
	GetByIDs(ctx context.Context, userID uint, ids []uint) ([]T, error)
}

type attributeRepository[T models.AttributeKind] struct {
	db         *gorm.DB
	joinTable  string
	joinColumn string
}

func NewTagRepository(db *gorm.DB) AttributeRepository[models.Tag] {
	return &attributeRepository[models.Tag]{db: db, joinTable: "influencer_tags", joinColumn: "tag_id"}
}

func NewStyleRepository(db *gorm.DB) AttributeRepository[models.Style] {
	return &attributeRepository[models.Style]{db: db, joinTable: "influencer_styles", joinColumn: "style_id"}
}

func (r *attributeRepository[T]) Create(ctx context.Context, item *T) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// List returns the user's records ordered by name descending. With
// assignedOnly it keeps only records attached to one of the user's
// influencers.
func (r *attributeRepository[T]) List(ctx context.Context, userID uint, assignedOnly bool) ([]T, error) {
	var items []T
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if assignedOnly {
		assigned := r.db.Table(r.joinTable+" AS j").
			Select("j."+r.joinColumn).
			Joins("JOIN influencers ON influencers.id = j.influencer_id").
			Where("influencers.user_id = ?", userID)
		query = query.Where("id IN (?)", assigned)
	}

	err := query.Distinct().Order("name desc").Order("id desc").Find(&items).Error
	return items, err
}

// GetByIDs returns the user's records among ids. Missing or foreign ids are
// silently dropped; callers compare lengths.
func (r *attributeRepository[T]) GetByIDs(ctx context.Context, userID uint, ids []uint) ([]T, error) {
	var items []T
	if len(ids) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("load %T by ids: %w", *new(T), err)
	}
	return items, nil
}
