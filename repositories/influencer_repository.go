package repositories

import (
	"context"

	"influencer-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InfluencerRepository interface {
	Create(ctx context.Context, influencer *models.Influencer) error
	GetByID(ctx context.Context, userID, id uint) (*models.Influencer, error)
	GetList(ctx context.Context, userID uint, filter models.InfluencerFilter) ([]models.Influencer, error)
	Update(ctx context.Context, influencer *models.Influencer, tags *[]models.Tag, styles *[]models.Style) error
	UpdateProfileImage(ctx context.Context, influencer *models.Influencer, path string) error
	Delete(ctx context.Context, influencer *models.Influencer) error
}

type influencerRepository struct {
	db *gorm.DB
}

func NewInfluencerRepository(db *gorm.DB) InfluencerRepository {
	return &influencerRepository{db: db}
}

// Create inserts the influencer and links the already persisted tags and
// styles set on it.
func (r *influencerRepository) Create(ctx context.Context, influencer *models.Influencer) error {
	return r.db.WithContext(ctx).Omit("Tags.*", "Styles.*").Create(influencer).Error
}

func (r *influencerRepository) GetByID(ctx context.Context, userID, id uint) (*models.Influencer, error) {
	var influencer models.Influencer
	err := r.db.WithContext(ctx).
		Preload("Tags", orderByID).
		Preload("Styles", orderByID).
		Where("user_id = ?", userID).
		First(&influencer, id).Error
	return &influencer, err
}

func (r *influencerRepository) GetList(ctx context.Context, userID uint, filter models.InfluencerFilter) ([]models.Influencer, error) {
	var influencers []models.Influencer

	query := r.db.WithContext(ctx).Model(&models.Influencer{}).
		Preload("Tags", orderByID).
		Preload("Styles", orderByID).
		Where("user_id = ?", userID)

	if len(filter.TagIDs) > 0 {
		tagged := r.db.Table("influencer_tags").Select("influencer_id").Where("tag_id IN ?", filter.TagIDs)
		query = query.Where("id IN (?)", tagged)
	}

	if len(filter.StyleIDs) > 0 {
		styled := r.db.Table("influencer_styles").Select("influencer_id").Where("style_id IN ?", filter.StyleIDs)
		query = query.Where("id IN (?)", styled)
	}

	err := query.Order("id desc").Find(&influencers).Error
	return influencers, err
}

// Update saves the scalar columns and, inside the same transaction, replaces
// every relation set passed as non-nil. A nil set is left untouched.
func (r *influencerRepository) Update(ctx context.Context, influencer *models.Influencer, tags *[]models.Tag, styles *[]models.Style) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(influencer).Error; err != nil {
			return err
		}

		if tags != nil {
			if err := replaceAssociation(tx, influencer, "Tags", *tags); err != nil {
				return err
			}
			influencer.Tags = *tags
		}

		if styles != nil {
			if err := replaceAssociation(tx, influencer, "Styles", *styles); err != nil {
				return err
			}
			influencer.Styles = *styles
		}

		return nil
	})
}

func (r *influencerRepository) UpdateProfileImage(ctx context.Context, influencer *models.Influencer, path string) error {
	err := r.db.WithContext(ctx).Model(influencer).
		Omit(clause.Associations).
		Update("profile_image", path).Error
	if err != nil {
		return err
	}
	influencer.ProfileImage = path
	return nil
}

// Delete removes the influencer together with its join rows.
func (r *influencerRepository) Delete(ctx context.Context, influencer *models.Influencer) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(influencer).Error
}

func replaceAssociation[T any](tx *gorm.DB, influencer *models.Influencer, name string, items []T) error {
	association := tx.Model(influencer).Omit(name + ".*").Association(name)
	if len(items) == 0 {
		return association.Clear()
	}
	return association.Replace(items)
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
