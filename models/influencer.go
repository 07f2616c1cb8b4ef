package models

import (
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InfluencerUploadDir is the storage namespace for profile images.
const InfluencerUploadDir = "uploads/influencer"

// newUUID is swapped in tests to get deterministic file names.
var newUUID = uuid.NewString

type Influencer struct {
	ID           uint            `json:"id" gorm:"primarykey"`
	UserID       uint            `json:"user_id" gorm:"not null;index"`
	Name         string          `json:"name" gorm:"size:255;not null"`
	InstaID      string          `json:"insta_id" gorm:"size:255;not null"`
	Followers    int             `json:"followers" gorm:"not null"`
	InstaLink    string          `json:"insta_link" gorm:"size:255;not null"`
	Score        decimal.Decimal `json:"score" gorm:"type:numeric(5,2);default:0"`
	Tags         []Tag           `json:"tags" gorm:"many2many:influencer_tags;"`
	Styles       []Style         `json:"styles" gorm:"many2many:influencer_styles;"`
	ProfileImage string          `json:"profile_image"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (i Influencer) String() string {
	return i.Name
}

// TagIDs returns the ids of the attached tags in load order.
func (i Influencer) TagIDs() []uint {
	ids := make([]uint, 0, len(i.Tags))
	for _, t := range i.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// StyleIDs returns the ids of the attached styles in load order.
func (i Influencer) StyleIDs() []uint {
	ids := make([]uint, 0, len(i.Styles))
	for _, s := range i.Styles {
		ids = append(ids, s.ID)
	}
	return ids
}

// InfluencerImagePath generates the storage path for a new profile image,
// keeping the extension of the uploaded file name. fallbackExt is used when
// the name has none.
func InfluencerImagePath(filename, fallbackExt string) string {
	ext := fallbackExt
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		ext = filename[i+1:]
	}

	name := newUUID()
	if ext != "" {
		name += "." + ext
	}
	return path.Join(InfluencerUploadDir, name)
}
