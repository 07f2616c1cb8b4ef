package models

import "time"

// Attribute holds the columns shared by the user-owned labels that can be
// attached to an influencer.
type Attribute struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	UserID    uint      `json:"-" gorm:"not null;index"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (a Attribute) String() string {
	return a.Name
}

// Base returns the shared columns. It is promoted to Tag and Style so generic
// code can read them.
func (a Attribute) Base() Attribute {
	return a
}

type Tag struct {
	Attribute
}

func NewTag(userID uint, name string) Tag {
	return Tag{Attribute{Name: name, UserID: userID}}
}

type Style struct {
	Attribute
}

func NewStyle(userID uint, name string) Style {
	return Style{Attribute{Name: name, UserID: userID}}
}

// AttributeKind is satisfied by Tag and Style.
type AttributeKind interface {
	Tag | Style
	Base() Attribute
}
