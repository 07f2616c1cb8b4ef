package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name" validate:"max=255"`
}

type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,min=5"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// UserFields are the optional columns accepted when creating a user.
type UserFields struct {
	Name        string
	IsStaff     bool
	IsSuperuser bool
}

type CreateAttributeRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// InfluencerRequest is the payload for create and full update. A nil Tags or
// Styles means the field was absent from the payload; a non-nil empty slice
// means it was sent empty.
type InfluencerRequest struct {
	Name      string           `json:"name" validate:"required,max=255"`
	InstaID   string           `json:"insta_id" validate:"required,max=255"`
	Followers *int             `json:"followers" validate:"required"`
	InstaLink string           `json:"insta_link" validate:"required,max=255"`
	Score     *decimal.Decimal `json:"score"`
	Tags      *[]uint          `json:"tags"`
	Styles    *[]uint          `json:"styles"`
}

// InfluencerPatchRequest is the payload for partial update. Only non-nil
// fields are applied.
type InfluencerPatchRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=255"`
	InstaID   *string          `json:"insta_id" validate:"omitempty,min=1,max=255"`
	Followers *int             `json:"followers"`
	InstaLink *string          `json:"insta_link" validate:"omitempty,min=1,max=255"`
	Score     *decimal.Decimal `json:"score"`
	Tags      *[]uint          `json:"tags"`
	Styles    *[]uint          `json:"styles"`
}

// AsPatch converts a full payload into the patch form. Absent relation
// fields become empty sets so a full update clears them.
func (r InfluencerRequest) AsPatch() InfluencerPatchRequest {
	tags, styles := r.Tags, r.Styles
	if tags == nil {
		tags = &[]uint{}
	}
	if styles == nil {
		styles = &[]uint{}
	}
	return InfluencerPatchRequest{
		Name:      &r.Name,
		InstaID:   &r.InstaID,
		Followers: r.Followers,
		InstaLink: &r.InstaLink,
		Score:     r.Score,
		Tags:      tags,
		Styles:    styles,
	}
}

// InfluencerFilter narrows an influencer list. Empty slices disable the
// corresponding filter.
type InfluencerFilter struct {
	TagIDs   []uint
	StyleIDs []uint
}
