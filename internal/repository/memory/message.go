package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lifechef-health/careportal-api/internal/model"
	"github.com/lifechef-health/careportal-api/internal/repository"
)

type messageRepository struct {
	store *Store
}

func NewMessageRepository(store *Store) repository.MessageRepository {
	return &messageRepository{store: store}
}

// ListConversations filters by the other participant's name and orders
// by last message time, newest first. Unread counts are derived from the
// viewer's unread messages at read time.
func (r *messageRepository) ListConversations(ctx context.Context, filter *model.ConversationFilter) ([]*model.Conversation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if filter == nil {
		filter = &model.ConversationFilter{}
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var out []*model.Conversation
	for _, conv := range r.store.conversations {
		if search != "" {
			other, ok := conv.Other(filter.UserID)
			if !ok || !strings.Contains(strings.ToLower(r.store.participantName(other)), search) {
				continue
			}
		}
		copied := *conv
		copied.UnreadCount = r.store.unreadFor(conv.ID, filter.UserID)
		out = append(out, &copied)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastMessage, out[j].LastMessage
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.Timestamp.After(b.Timestamp)
	})

	return out, nil
}

func (r *messageRepository) GetConversation(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, conv := range r.store.conversations {
		if conv.ID == id {
			copied := *conv
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

// ListMessages returns the thread newest first.
func (r *messageRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]*model.Message, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if !r.store.conversationExists(conversationID) {
		return nil, repository.ErrNotFound
	}

	msgs := r.store.messages[conversationID]
	out := make([]*model.Message, len(msgs))
	copy(out, msgs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// Append adds a message to the thread and refreshes the conversation's
// last message.
func (r *messageRepository) Append(ctx context.Context, conversationID uuid.UUID, msg *model.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, conv := range r.store.conversations {
		if conv.ID == conversationID {
			r.store.messages[conversationID] = append(r.store.messages[conversationID], msg)
			conv.LastMessage = msg
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) conversationExists(id uuid.UUID) bool {
	for _, conv := range s.conversations {
		if conv.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) unreadFor(conversationID, viewer uuid.UUID) int {
	count := 0
	for _, m := range s.messages[conversationID] {
		if !m.IsRead && m.RecipientID == viewer {
			count++
		}
	}
	return count
}

// participantName resolves a display name, checking patients before
// users since most conversation counterparts are patients.
func (s *Store) participantName(id uuid.UUID) string {
	if p := s.findPatient(id); p != nil {
		return p.Name
	}
	if u := s.findUser(id); u != nil {
		return u.Name
	}
	return ""
}
