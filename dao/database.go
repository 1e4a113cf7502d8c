package dao

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"beachsafe-lostandfound/utils"
)

// DefaultExpiryDays is how long a report stays fresh after creation.
const DefaultExpiryDays = 30

// Store owns the canonical item records, the tag index and the message
// table. Every mutation and every snapshot read serializes on one mutex,
// so readers never observe a partially applied write.
type Store struct {
	mu         sync.Mutex
	db         *gorm.DB
	ExpiryDays int
}

// Open opens (or creates) the sqlite database at path and migrates the
// schema. Use ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise get its own empty
		// in-memory database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("getting sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&LostItem{}, &Tag{}, &TagItem{}, &LostItemMessage{}); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}
	return &Store{db: db, ExpiryDays: DefaultExpiryDays}, nil
}

// CreateInput carries the reporter-supplied fields of a new report.
type CreateInput struct {
	Title       string
	Description string
	Category    Category
	Status      Status // lost or found, chosen by the reporter
	BeachID     string
	Latitude    *float64
	Longitude   *float64
	Date        time.Time
	Tags        []string
	ContactInfo string
}

func (in *CreateInput) validate() error {
	switch {
	case in.Title == "":
		return &ValidationError{Field: "title"}
	case !ValidCategory(in.Category):
		return &ValidationError{Field: "category"}
	case in.Status != StatusLost && in.Status != StatusFound:
		return &ValidationError{Field: "status"}
	case in.ContactInfo == "":
		return &ValidationError{Field: "contactInfo"}
	case in.Date.IsZero():
		return &ValidationError{Field: "date"}
	case in.BeachID == "":
		return &ValidationError{Field: "beachId"}
	}
	return nil
}

// Create stores a new report on behalf of userID. The id, timestamps and
// expiry date are assigned here; tags are normalized into a deduplicated
// lowercase set.
func (s *Store) Create(userID string, input CreateInput) (*LostItem, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	item := &LostItem{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Status:      input.Status,
		BeachID:     input.BeachID,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Date:        input.Date,
		Tags:        strings.Join(utils.NormalizeTags(input.Tags), ","),
		ContactInfo: input.ContactInfo,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.AddDate(0, 0, s.expiryDays()),
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	if err := s.indexTags(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateInput is a partial merge: nil fields are left untouched. The id,
// owner and creation time are not representable here and so cannot be
// overwritten.
type UpdateInput struct {
	Title       *string
	Description *string
	Category    *Category
	Status      *Status
	BeachID     *string
	Latitude    *float64
	Longitude   *float64
	Date        *time.Time
	Tags        []string // nil leaves tags unchanged
	ContactInfo *string
}

// Update merges input into the stored record and refreshes UpdatedAt.
// A status change must be a legal state-machine edge. Last writer wins;
// there is no version check.
func (s *Store) Update(id string, input UpdateInput) (*LostItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != item.Status {
		if !CanTransition(item.Status, *input.Status) {
			return nil, ErrInvalidTransition
		}
		item.Status = *input.Status
	}
	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		if !ValidCategory(*input.Category) {
			return nil, &ValidationError{Field: "category"}
		}
		item.Category = *input.Category
	}
	if input.BeachID != nil {
		item.BeachID = *input.BeachID
	}
	if input.Latitude != nil {
		item.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		item.Longitude = input.Longitude
	}
	if input.Date != nil {
		item.Date = *input.Date
	}
	if input.ContactInfo != nil {
		item.ContactInfo = *input.ContactInfo
	}
	reindex := false
	if input.Tags != nil {
		item.Tags = strings.Join(utils.NormalizeTags(input.Tags), ",")
		reindex = true
	}
	item.UpdatedAt = time.Now()

	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	if reindex {
		if err := s.db.Where("item_id = ?", item.ID).Delete(&TagItem{}).Error; err != nil {
			return nil, fmt.Errorf("clearing tag index: %w", err)
		}
		if err := s.indexTags(item); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// Delete removes a report and its tag associations. Deleting a missing id
// is a silent no-op. Messages survive; a thread outlives its item.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Where("item_id = ?", id).Delete(&TagItem{}).Error; err != nil {
		return fmt.Errorf("clearing tag index: %w", err)
	}
	if err := s.db.Delete(&LostItem{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// Get returns the report with the given id.
func (s *Store) Get(id string) (*LostItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id)
}

func (s *Store) get(id string) (*LostItem, error) {
	item := &LostItem{}
	err := s.db.First(item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListAll returns a snapshot of every report, oldest first.
func (s *Store) ListAll() ([]LostItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []LostItem
	if err := s.db.Order("created_at, id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// ListByStatus returns a snapshot of reports in one status, oldest first.
// This is the candidate feed for matching.
func (s *Store) ListByStatus(status Status) ([]LostItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []LostItem
	err := s.db.Where("status = ?", status).Order("created_at, id").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("listing items by status: %w", err)
	}
	return items, nil
}

// Transition moves a report along the status state machine. Only the
// reporting user may do this.
func (s *Store) Transition(userID, id string, to Status) (*LostItem, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrUnauthenticated
	}
	if !CanTransition(item.Status, to) {
		return nil, ErrInvalidTransition
	}
	item.Status = to
	item.UpdatedAt = time.Now()
	if err := s.db.Save(item).Error; err != nil {
		return nil, fmt.Errorf("saving transition: %w", err)
	}
	return item, nil
}

// ListTags returns the distinct tag vocabulary seen so far, sorted.
// Tags are never garbage-collected when their last item goes away.
func (s *Store) ListTags() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var tags []Tag
	if err := s.db.Order("tag_name").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.TagName)
	}
	return names, nil
}

// indexTags records the item's tags in the tag vocabulary and the
// item-tag join table. Caller holds the lock.
func (s *Store) indexTags(item *LostItem) error {
	for _, name := range item.TagList() {
		tag := &Tag{TagName: name}
		err := s.db.Where("tag_name = ?", name).First(tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := s.db.Create(tag).Error; err != nil {
				return fmt.Errorf("creating tag: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("looking up tag: %w", err)
		}
		join := &TagItem{TagID: tag.TagID, ItemID: item.ID}
		if err := s.db.Create(join).Error; err != nil {
			return fmt.Errorf("indexing tag: %w", err)
		}
	}
	return nil
}

func (s *Store) expiryDays() int {
	if s.ExpiryDays <= 0 {
		return DefaultExpiryDays
	}
	return s.ExpiryDays
}
