package dao

import (
	"strings"
	"time"
)

// Item category, closed set.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryJewelry     Category = "jewelry"
	CategoryClothing    Category = "clothing"
	CategoryAccessories Category = "accessories"
	CategoryDocuments   Category = "documents"
	CategoryToys        Category = "toys"
	CategoryOther       Category = "other"
)

var categories = []Category{
	CategoryElectronics, CategoryJewelry, CategoryClothing,
	CategoryAccessories, CategoryDocuments, CategoryToys, CategoryOther,
}

func ValidCategory(c Category) bool {
	for _, k := range categories {
		if c == k {
			return true
		}
	}
	return false
}

// Report status. Lost and found are the two open, matchable states;
// claimed and resolved close a report.
type Status string

const (
	StatusLost     Status = "lost"
	StatusFound    Status = "found"
	StatusClaimed  Status = "claimed"
	StatusResolved Status = "resolved"
)

// CanTransition reports whether the status state machine allows from -> to.
// Resolved is terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusLost, StatusFound:
		return to == StatusClaimed || to == StatusResolved
	case StatusClaimed:
		return to == StatusResolved
	}
	return false
}

// A lost or found item report.
type LostItem struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Description string
	Category    Category
	Status      Status `gorm:"index"`
	BeachID     string // opaque key into the beach directory
	Latitude    *float64
	Longitude   *float64
	Date        time.Time // calendar date the item was lost/found
	Tags        string    // comma-joined, lowercase, deduplicated
	ContactInfo string
	UserID      string // reporting user, set once
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ExpiresAt   time.Time
}

// TagList splits the denormalized tag column back into a slice.
func (i *LostItem) TagList() []string {
	if i.Tags == "" {
		return nil
	}
	return strings.Split(i.Tags, ",")
}

// Expired reports whether the item is past its expiry date. Expired items
// stay in the store; acting on them is the caller's decision.
func (i *LostItem) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Tag vocabulary entry.
type Tag struct {
	TagID   uint   `gorm:"primaryKey"`
	TagName string `gorm:"unique"`
}

// Item-tag association.
type TagItem struct {
	TagItemID uint `gorm:"primaryKey"`
	TagID     uint
	ItemID    string `gorm:"index"`
}

// A message in an item's contact thread.
type LostItemMessage struct {
	ID         string `gorm:"primaryKey"`
	LostItemID string `gorm:"index"`
	SenderID   string
	ReceiverID string
	Content    string
	Timestamp  time.Time
	IsRead     bool
}
