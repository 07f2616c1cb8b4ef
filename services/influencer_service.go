package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"influencer-api/imaging"
	"influencer-api/models"
	"influencer-api/repositories"
	"influencer-api/storage"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var maxScore = decimal.NewFromInt(1000)

type InfluencerService interface {
	List(ctx context.Context, userID uint, filter models.InfluencerFilter) ([]models.Influencer, error)
	Get(ctx context.Context, userID, id uint) (*models.Influencer, error)
	Create(ctx context.Context, userID uint, req models.InfluencerRequest) (*models.Influencer, error)
	Update(ctx context.Context, userID, id uint, req models.InfluencerRequest) (*models.Influencer, error)
	PartialUpdate(ctx context.Context, userID, id uint, req models.InfluencerPatchRequest) (*models.Influencer, error)
	Delete(ctx context.Context, userID, id uint) error
	UploadImage(ctx context.Context, userID, id uint, filename string, data []byte) (*models.Influencer, error)
	ImageURL(path string) string
}

type influencerService struct {
	influencerRepo repositories.InfluencerRepository
	tagRepo        repositories.AttributeRepository[models.Tag]
	styleRepo      repositories.AttributeRepository[models.Style]
	storage        storage.Storage
	imageLimits    imaging.Limits
}

func NewInfluencerService(
	influencerRepo repositories.InfluencerRepository,
	tagRepo repositories.AttributeRepository[models.Tag],
	styleRepo repositories.AttributeRepository[models.Style],
	store storage.Storage,
	imageLimits imaging.Limits,
) InfluencerService {
	return &influencerService{
		influencerRepo: influencerRepo,
		tagRepo:        tagRepo,
		styleRepo:      styleRepo,
		storage:        store,
		imageLimits:    imageLimits,
	}
}

func (s *influencerService) List(ctx context.Context, userID uint, filter models.InfluencerFilter) ([]models.Influencer, error) {
	return s.influencerRepo.GetList(ctx, userID, filter)
}

func (s *influencerService) Get(ctx context.Context, userID, id uint) (*models.Influencer, error) {
	influencer, err := s.influencerRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrInfluencerNotFound
		}
		return nil, err
	}
	return influencer, nil
}

func (s *influencerService) Create(ctx context.Context, userID uint, req models.InfluencerRequest) (*models.Influencer, error) {
	verr := &models.ValidationError{}
	checkScore(verr, req.Score)
	tags, err := resolveAttributes(ctx, s.tagRepo, verr, "tags", userID, req.Tags)
	if err != nil {
		return nil, err
	}
	styles, err := resolveAttributes(ctx, s.styleRepo, verr, "styles", userID, req.Styles)
	if err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		return nil, verr
	}

	influencer := &models.Influencer{
		UserID:    userID,
		Name:      req.Name,
		InstaID:   req.InstaID,
		Followers: *req.Followers,
		InstaLink: req.InstaLink,
	}
	if req.Score != nil {
		influencer.Score = *req.Score
	}
	if tags != nil {
		influencer.Tags = *tags
	}
	if styles != nil {
		influencer.Styles = *styles
	}

	if err := s.influencerRepo.Create(ctx, influencer); err != nil {
		return nil, err
	}
	return influencer, nil
}

// Update replaces every scalar field and both relation sets. Relations
// missing from req are cleared.
func (s *influencerService) Update(ctx context.Context, userID, id uint, req models.InfluencerRequest) (*models.Influencer, error) {
	return s.PartialUpdate(ctx, userID, id, req.AsPatch())
}

// PartialUpdate applies only the fields present in req.
func (s *influencerService) PartialUpdate(ctx context.Context, userID, id uint, req models.InfluencerPatchRequest) (*models.Influencer, error) {
	influencer, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	verr := &models.ValidationError{}
	checkScore(verr, req.Score)
	tags, err := resolveAttributes(ctx, s.tagRepo, verr, "tags", userID, req.Tags)
	if err != nil {
		return nil, err
	}
	styles, err := resolveAttributes(ctx, s.styleRepo, verr, "styles", userID, req.Styles)
	if err != nil {
		return nil, err
	}
	if verr.HasErrors() {
		return nil, verr
	}

	if req.Name != nil {
		influencer.Name = *req.Name
	}
	if req.InstaID != nil {
		influencer.InstaID = *req.InstaID
	}
	if req.Followers != nil {
		influencer.Followers = *req.Followers
	}
	if req.InstaLink != nil {
		influencer.InstaLink = *req.InstaLink
	}
	if req.Score != nil {
		influencer.Score = *req.Score
	}

	if err := s.influencerRepo.Update(ctx, influencer, tags, styles); err != nil {
		return nil, err
	}
	return influencer, nil
}

// Delete removes the influencer and then its stored image. A failure to
// remove the image is logged and does not fail the request.
func (s *influencerService) Delete(ctx context.Context, userID, id uint) error {
	influencer, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.influencerRepo.Delete(ctx, influencer); err != nil {
		return err
	}

	s.removeImage(ctx, influencer.ProfileImage)
	return nil
}

// UploadImage validates data as an image, stores it under a fresh name and
// points the influencer at it. The previous image is removed once the record
// is updated.
func (s *influencerService) UploadImage(ctx context.Context, userID, id uint, filename string, data []byte) (*models.Influencer, error) {
	influencer, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(data, s.imageLimits.MaxPixels)
	if errors.Is(err, imaging.ErrTooManyPixels) {
		return nil, models.NewValidationError("profile_image", fmt.Sprintf("Image size exceeds the limit of %d pixels.", s.imageLimits.MaxPixels))
	}
	if err != nil {
		return nil, models.NewValidationError("profile_image", "Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
	}

	out, err := img.Fit(s.imageLimits.MaxDimension)
	if err != nil {
		return nil, fmt.Errorf("resize image: %w", err)
	}

	path := models.InfluencerImagePath(filename, img.Extension())
	if err := s.storage.Save(ctx, path, bytes.NewReader(out)); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	previous := influencer.ProfileImage
	if err := s.influencerRepo.UpdateProfileImage(ctx, influencer, path); err != nil {
		s.removeImage(ctx, path)
		return nil, err
	}

	if previous != path {
		s.removeImage(ctx, previous)
	}
	return influencer, nil
}

func (s *influencerService) ImageURL(path string) string {
	return s.storage.URL(path)
}

func (s *influencerService) removeImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.storage.Delete(ctx, path); err != nil {
		slog.Warn("remove stored image", "path", path, "error", err)
	}
}

// checkScore enforces the numeric(5,2) bounds of the score column.
func checkScore(verr *models.ValidationError, score *decimal.Decimal) {
	if score == nil {
		return
	}
	if !score.Equal(score.Round(2)) {
		verr.Add("score", "Ensure that there are no more than 2 decimal places.")
	}
	if score.Abs().GreaterThanOrEqual(maxScore) {
		verr.Add("score", "Ensure that there are no more than 3 digits before the decimal point.")
	}
}

// resolveAttributes loads the user's records for ids. A nil ids returns nil
// so callers can tell an absent field from an empty one. Unknown or foreign
// ids are reported on verr under field.
func resolveAttributes[T models.AttributeKind](
	ctx context.Context,
	repo repositories.AttributeRepository[T],
	verr *models.ValidationError,
	field string,
	userID uint,
	ids *[]uint,
) (*[]T, error) {
	if ids == nil {
		return nil, nil
	}

	unique := make([]uint, 0, len(*ids))
	seen := make(map[uint]bool, len(*ids))
	for _, id := range *ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	items, err := repo.GetByIDs(ctx, userID, unique)
	if err != nil {
		return nil, err
	}

	found := make(map[uint]bool, len(items))
	for _, item := range items {
		found[item.Base().ID] = true
	}
	for _, id := range unique {
		if !found[id] {
			verr.Add(field, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
		}
	}

	return &items, nil
}
