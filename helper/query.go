package helper

import (
	"strconv"
	"strings"

	"influencer-api/models"
)

// ParseIDList parses a comma separated list of ids such as "1, 2,3". Empty
// items are skipped. field names the query parameter in the returned error.
func ParseIDList(field, raw string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, models.NewValidationError(field, "A valid integer is required.")
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// ParseAssignedOnly reads the assigned_only flag. Any non-zero integer is
// true; an empty value is false.
func ParseAssignedOnly(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, models.NewValidationError("assigned_only", "A valid integer is required.")
	}
	return n != 0, nil
}

// ParseID parses a path id.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, models.ErrorNotFound{Message: "Not found."}
	}
	return uint(id), nil
}
