package serializers

import "influencer-api/models"

// URLFunc resolves a stored asset path to the URL clients fetch it from.
type URLFunc func(path string) string

// Influencer is the list and write representation. Relations are ids.
type Influencer struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	InstaID   string `json:"insta_id"`
	Followers int    `json:"followers"`
	InstaLink string `json:"insta_link"`
	Score     string `json:"score"`
	Tags      []uint `json:"tags"`
	Styles    []uint `json:"styles"`
}

// InfluencerDetail nests the related records and exposes the profile image.
type InfluencerDetail struct {
	ID           uint        `json:"id"`
	Name         string      `json:"name"`
	InstaID      string      `json:"insta_id"`
	Followers    int         `json:"followers"`
	InstaLink    string      `json:"insta_link"`
	Score        string      `json:"score"`
	Tags         []Attribute `json:"tags"`
	Styles       []Attribute `json:"styles"`
	ProfileImage *string     `json:"profile_image"`
}

type InfluencerImage struct {
	ID           uint    `json:"id"`
	ProfileImage *string `json:"profile_image"`
}

func NewInfluencer(i models.Influencer) Influencer {
	return Influencer{
		ID:        i.ID,
		Name:      i.Name,
		InstaID:   i.InstaID,
		Followers: i.Followers,
		InstaLink: i.InstaLink,
		Score:     i.Score.StringFixed(2),
		Tags:      i.TagIDs(),
		Styles:    i.StyleIDs(),
	}
}

func NewInfluencers(items []models.Influencer) []Influencer {
	out := make([]Influencer, 0, len(items))
	for _, i := range items {
		out = append(out, NewInfluencer(i))
	}
	return out
}

func NewInfluencerDetail(i models.Influencer, url URLFunc) InfluencerDetail {
	return InfluencerDetail{
		ID:           i.ID,
		Name:         i.Name,
		InstaID:      i.InstaID,
		Followers:    i.Followers,
		InstaLink:    i.InstaLink,
		Score:        i.Score.StringFixed(2),
		Tags:         NewAttributes(i.Tags),
		Styles:       NewAttributes(i.Styles),
		ProfileImage: imageURL(i.ProfileImage, url),
	}
}

func NewInfluencerImage(i models.Influencer, url URLFunc) InfluencerImage {
	return InfluencerImage{ID: i.ID, ProfileImage: imageURL(i.ProfileImage, url)}
}

func imageURL(path string, url URLFunc) *string {
	if path == "" {
		return nil
	}
	if url != nil {
		path = url(path)
	}
	return &path
}
