package handler

import (
	"strings"
	"time"

	"beachsafe-lostandfound/dao"
	"beachsafe-lostandfound/utils"
)

// Query is a compound filter. Zero-value fields mean "no filter"; active
// predicates combine with AND.
type Query struct {
	Text     string       // substring of title/description, or an exact tag
	Category dao.Category // exact match
	Status   dao.Status   // exact match
	// Inclusive date range on the item's lost/found date. Applied only
	// when BOTH bounds are set; a partial range is treated as no filter.
	// That asymmetry is deliberate, confirm before changing it.
	DateFrom time.Time
	DateTo   time.Time
}

// Filter applies q to a snapshot of items, preserving their relative
// order. It never mutates the input.
func Filter(items []dao.LostItem, q Query) []dao.LostItem {
	var out []dao.LostItem
	for _, item := range items {
		if matches(item, q) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item dao.LostItem, q Query) bool {
	if q.Text != "" && !matchesText(item, q.Text) {
		return false
	}
	if q.Category != "" && item.Category != q.Category {
		return false
	}
	if q.Status != "" && item.Status != q.Status {
		return false
	}
	if !q.DateFrom.IsZero() && !q.DateTo.IsZero() {
		if item.Date.Before(q.DateFrom) || item.Date.After(q.DateTo) {
			return false
		}
	}
	return true
}

// matchesText is satisfied by a case-insensitive substring hit on the
// title or description, or by exact membership in the tag set.
func matchesText(item dao.LostItem, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(item.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(item.Description), needle) {
		return true
	}
	return utils.ContainsWord(needle, item.TagList())
}
