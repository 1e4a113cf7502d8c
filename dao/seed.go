package dao

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// SeedItem is one report in a seed fixture file. Dates use YYYY-MM-DD.
type SeedItem struct {
	UserID      string   `json:"userId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Status      Status   `json:"status"`
	BeachID     string   `json:"beachId"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
	ContactInfo string   `json:"contactInfo"`
}

// LoadSeed reads a JSON fixture of sample reports and creates them through
// the normal Create path, so seeded data obeys the same validation and
// bookkeeping as user reports. Returns how many items were created.
func LoadSeed(s *Store, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file: %w", err)
	}
	var seeds []SeedItem
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return 0, fmt.Errorf("parsing seed file: %w", err)
	}

	created := 0
	for i, seed := range seeds {
		date, err := time.Parse("2006-01-02", seed.Date)
		if err != nil {
			return created, fmt.Errorf("seed %d: bad date %q: %w", i, seed.Date, err)
		}
		_, err = s.Create(seed.UserID, CreateInput{
			Title:       seed.Title,
			Description: seed.Description,
			Category:    seed.Category,
			Status:      seed.Status,
			BeachID:     seed.BeachID,
			Date:        date,
			Tags:        seed.Tags,
			ContactInfo: seed.ContactInfo,
		})
		if err != nil {
			return created, fmt.Errorf("seed %d (%s): %w", i, seed.Title, err)
		}
		created++
	}
	return created, nil
}
