// Package serializers renders stored records in their wire shapes. Each
// response shape has its own type and the caller picks one explicitly.
package serializers

import "influencer-api/models"

type Attribute struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewAttribute[T models.AttributeKind](item T) Attribute {
	base := item.Base()
	return Attribute{ID: base.ID, Name: base.Name}
}

func NewAttributes[T models.AttributeKind](items []T) []Attribute {
	out := make([]Attribute, 0, len(items))
	for _, item := range items {
		out = append(out, NewAttribute(item))
	}
	return out
}
