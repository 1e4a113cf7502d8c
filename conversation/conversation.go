package conversation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"beachsafe-lostandfound/dao"
)

// MessageStore is the slice of the store the ledger needs. *dao.Store
// satisfies it.
type MessageStore interface {
	Get(id string) (*dao.LostItem, error)
	AppendMessage(msg *dao.LostItemMessage) error
	MessagesByItem(lostItemID string) ([]dao.LostItemMessage, error)
	MarkMessageRead(messageID string) error
	CountUnread(lostItemID, userID string) (int64, error)
}

// Ledger keeps per-item message threads. Two parties start talking once a
// match suggestion brings them together; each item carries one thread.
type Ledger struct {
	store MessageStore
}

func NewLedger(store MessageStore) *Ledger {
	return &Ledger{store: store}
}

// SendMessage appends a message to the item's thread on behalf of
// senderID. An unauthenticated sender fails before anything is written.
func (l *Ledger) SendMessage(senderID, lostItemID, receiverID, content string) (*dao.LostItemMessage, error) {
	if senderID == "" {
		return nil, dao.ErrUnauthenticated
	}
	if receiverID == "" {
		return nil, &dao.ValidationError{Field: "receiverId"}
	}
	if content == "" {
		return nil, &dao.ValidationError{Field: "content"}
	}
	if _, err := l.store.Get(lostItemID); err != nil {
		return nil, err
	}

	msg := &dao.LostItemMessage{
		ID:         uuid.NewString(),
		LostItemID: lostItemID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now(),
		IsRead:     false,
	}
	if err := l.store.AppendMessage(msg); err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}
	return msg, nil
}

// Thread returns an item's messages in chronological (insertion) order.
// Messages are never deleted, so a thread only grows.
func (l *Ledger) Thread(lostItemID string) ([]dao.LostItemMessage, error) {
	return l.store.MessagesByItem(lostItemID)
}

// MarkRead marks one message as read. Idempotent; read state never
// resets.
func (l *Ledger) MarkRead(messageID string) error {
	return l.store.MarkMessageRead(messageID)
}

// UnreadCount reports how many messages in the thread are still unread by
// userID.
func (l *Ledger) UnreadCount(lostItemID, userID string) (int64, error) {
	return l.store.CountUnread(lostItemID, userID)
}
