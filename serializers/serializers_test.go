package serializers

import (
	"encoding/json"
	"testing"

	"influencer-api/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() models.Influencer {
	tag := models.NewTag(1, "Fashion")
	tag.ID = 3
	style := models.NewStyle(1, "Casual")
	style.ID = 7
	return models.Influencer{
		ID:        9,
		UserID:    1,
		Name:      "Jane",
		InstaID:   "jane",
		Followers: 1234,
		InstaLink: "https://instagram.com/jane",
		Score:     decimal.RequireFromString("4.5"),
		Tags:      []models.Tag{tag},
		Styles:    []models.Style{style},
	}
}

func TestInfluencerSummary(t *testing.T) {
	data, err := json.Marshal(NewInfluencer(sample()))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 9, "name": "Jane", "insta_id": "jane", "followers": 1234,
		"insta_link": "https://instagram.com/jane", "score": "4.50",
		"tags": [3], "styles": [7]
	}`, string(data))
}

func TestInfluencerSummaryEmptyRelations(t *testing.T) {
	out := NewInfluencer(models.Influencer{ID: 1, Name: "x"})
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tags":[]`)
	assert.Contains(t, string(data), `"score":"0.00"`)
}

func TestInfluencerDetail(t *testing.T) {
	inf := sample()
	inf.ProfileImage = "uploads/influencer/a.jpg"

	detail := NewInfluencerDetail(inf, func(p string) string { return "/media/" + p })
	data, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 9, "name": "Jane", "insta_id": "jane", "followers": 1234,
		"insta_link": "https://instagram.com/jane", "score": "4.50",
		"tags": [{"id": 3, "name": "Fashion"}],
		"styles": [{"id": 7, "name": "Casual"}],
		"profile_image": "/media/uploads/influencer/a.jpg"
	}`, string(data))
}

func TestInfluencerImageWithoutAsset(t *testing.T) {
	data, err := json.Marshal(NewInfluencerImage(models.Influencer{ID: 2}, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 2, "profile_image": null}`, string(data))
}

func TestAttributes(t *testing.T) {
	tags := []models.Tag{models.NewTag(1, "b"), models.NewTag(1, "a")}
	tags[0].ID, tags[1].ID = 2, 1
	assert.Equal(t, []Attribute{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}, NewAttributes(tags))
	assert.Empty(t, NewAttributes([]models.Style(nil)))
}
