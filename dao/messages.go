package dao

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// AppendMessage stores a new thread message. Identity and content checks
// belong to the conversation layer; this is plain persistence.
func (s *Store) AppendMessage(msg *LostItemMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Create(msg).Error; err != nil {
		return fmt.Errorf("appending message: %w", err)
	}
	return nil
}

// MessagesByItem returns an item's thread in insertion order.
func (s *Store) MessagesByItem(lostItemID string) ([]LostItemMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var msgs []LostItemMessage
	err := s.db.Where("lost_item_id = ?", lostItemID).Order("timestamp, id").Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("reading thread: %w", err)
	}
	return msgs, nil
}

// MarkMessageRead flips a message to read. Read state never goes back to
// unread, so marking twice is a no-op.
func (s *Store) MarkMessageRead(messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &LostItemMessage{}
	err := s.db.First(msg, "id = ?", messageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("getting message: %w", err)
	}
	if msg.IsRead {
		return nil
	}
	msg.IsRead = true
	if err := s.db.Save(msg).Error; err != nil {
		return fmt.Errorf("marking message read: %w", err)
	}
	return nil
}

// CountUnread counts messages addressed to userID in one thread that have
// not been read yet.
func (s *Store) CountUnread(lostItemID, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err := s.db.Model(&LostItemMessage{}).
		Where("lost_item_id = ? AND receiver_id = ? AND is_read = ?", lostItemID, userID, false).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("counting unread: %w", err)
	}
	return n, nil
}
