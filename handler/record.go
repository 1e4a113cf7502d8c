package handler

import (
	"fmt"
	"strings"

	"beachsafe-lostandfound/dao"
)

// Summary renders one report as a short markdown block for list output.
func Summary(item dao.LostItem) string {
	builder := strings.Builder{}
	switch item.Status {
	case dao.StatusLost:
		builder.WriteString(fmt.Sprintf("Lost item %s\n", item.ID))
	case dao.StatusFound:
		builder.WriteString(fmt.Sprintf("Found item %s\n", item.ID))
	default:
		builder.WriteString(fmt.Sprintf("Closed item %s (%s)\n", item.ID, item.Status))
	}
	builder.WriteString(fmt.Sprintf("Title: %s\n", item.Title))
	builder.WriteString(fmt.Sprintf("Beach: %s\n", item.BeachID))
	builder.WriteString(fmt.Sprintf("Date: %s\n", item.Date.Format("2006-01-02")))
	if item.Description != "" {
		builder.WriteString(fmt.Sprintf("Description: %s\n", item.Description))
	}
	if item.Tags != "" {
		builder.WriteString(fmt.Sprintf(">Tags: %s\n", item.Tags))
	}
	return builder.String()
}

// Summaries renders a filtered view of the store, one block per report.
func Summaries(items []dao.LostItem, q Query) []string {
	filtered := Filter(items, q)
	out := make([]string, 0, len(filtered))
	for _, item := range filtered {
		out = append(out, Summary(item))
	}
	return out
}
