package helper

import (
	"testing"

	"influencer-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDList(t *testing.T) {
	ids, err := ParseIDList("tags", "1, 2,3")
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids)

	ids, err = ParseIDList("tags", "")
	require.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = ParseIDList("tags", "4,,")
	require.NoError(t, err)
	assert.Equal(t, []uint{4}, ids)

	_, err = ParseIDList("styles", "1,x")
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "styles")

	_, err = ParseIDList("tags", "-1")
	assert.Error(t, err)
}

func TestParseAssignedOnly(t *testing.T) {
	for raw, want := range map[string]bool{"": false, "0": false, "1": true, " 2 ": true} {
		got, err := ParseAssignedOnly(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseAssignedOnly("yes")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"0", "abc", ""} {
		_, err := ParseID(raw)
		assert.ErrorAs(t, err, &models.ErrorNotFound{}, raw)
	}
}
