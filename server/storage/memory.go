package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/models"
)

// MemStorage keeps every table in process memory behind a single lock.
// FAQ iteration follows insertion order so search results and tie-breaks
// are deterministic. All methods hand out copies; callers never hold a
// reference into the tables.
type MemStorage struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]*models.User
	faqs          map[uuid.UUID]*models.Faq
	faqOrder      []uuid.UUID
	conversations map[uuid.UUID]*models.Conversation
	messages      map[uuid.UUID][]*models.Message
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:         make(map[uuid.UUID]*models.User),
		faqs:          make(map[uuid.UUID]*models.Faq),
		conversations: make(map[uuid.UUID]*models.Conversation),
		messages:      make(map[uuid.UUID][]*models.Message),
	}
}

func copyFaq(f *models.Faq) *models.Faq {
	c := *f
	c.Keywords = append([]string(nil), f.Keywords...)
	return &c
}

func (s *MemStorage) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, &ValidationError{Field: "username", Reason: "already taken"}
		}
	}
	user := &models.User{
		ID:       uuid.New(),
		Username: username,
		Password: password,
	}
	s.users[user.ID] = user
	c := *user
	return &c, nil
}

func (s *MemStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (s *MemStorage) CreateFaq(ctx context.Context, input FaqInput) (*models.Faq, error) {
	if err := validateFaqInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	faq := &models.Faq{
		ID:         uuid.New(),
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Keywords:   append([]string(nil), input.Keywords...),
		UsageCount: 0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.faqs[faq.ID] = faq
	s.faqOrder = append(s.faqOrder, faq.ID)
	return copyFaq(faq), nil
}

func (s *MemStorage) GetFaq(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if faq, exists := s.faqs[id]; exists {
		return copyFaq(faq), nil
	}
	return nil, nil
}

func (s *MemStorage) UpdateFaq(ctx context.Context, id uuid.UUID, update FaqUpdate) (*models.Faq, error) {
	if err := validateFaqUpdate(update); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	faq, exists := s.faqs[id]
	if !exists {
		return nil, ErrNotFound
	}
	if update.Question != nil {
		faq.Question = *update.Question
	}
	if update.Answer != nil {
		faq.Answer = *update.Answer
	}
	if update.Category != nil {
		faq.Category = *update.Category
	}
	if update.Keywords != nil {
		faq.Keywords = append([]string(nil), (*update.Keywords)...)
	}
	faq.UpdatedAt = time.Now()
	return copyFaq(faq), nil
}

func (s *MemStorage) DeleteFaq(ctx context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.faqs[id]; !exists {
		return false, nil
	}
	delete(s.faqs, id)
	for i, fid := range s.faqOrder {
		if fid == id {
			s.faqOrder = append(s.faqOrder[:i], s.faqOrder[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *MemStorage) ListFaqs(ctx context.Context) ([]models.Faq, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	faqs := make([]models.Faq, 0, len(s.faqOrder))
	for _, id := range s.faqOrder {
		faqs = append(faqs, *copyFaq(s.faqs[id]))
	}
	// Stable keeps insertion order for equal usage counts.
	sort.SliceStable(faqs, func(i, j int) bool {
		return faqs[i].UsageCount > faqs[j].UsageCount
	})
	return faqs, nil
}

func (s *MemStorage) SearchFaqs(ctx context.Context, query string) ([]models.Faq, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lowered := strings.ToLower(query)
	var matches []models.Faq
	for _, id := range s.faqOrder {
		if matchesFaq(s.faqs[id], lowered) {
			matches = append(matches, *copyFaq(s.faqs[id]))
		}
	}
	return matches, nil
}

func (s *MemStorage) IncrementFaqUsage(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// No-op when absent; usage increments do not refresh updated_at.
	if faq, exists := s.faqs[id]; exists {
		faq.UsageCount++
	}
	return nil
}

func (s *MemStorage) CreateConversation(ctx context.Context, userName string) (*models.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	conv := &models.Conversation{
		ID:        uuid.New(),
		UserName:  userName,
		Status:    models.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.conversations[conv.ID] = conv
	c := *conv
	return &c, nil
}

func (s *MemStorage) GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if conv, exists := s.conversations[id]; exists {
		c := *conv
		return &c, nil
	}
	return nil, nil
}

func (s *MemStorage) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	convs := make([]models.Conversation, 0, len(s.conversations))
	for _, conv := range s.conversations {
		convs = append(convs, *conv)
	}
	sort.Slice(convs, func(i, j int) bool {
		return convs[i].UpdatedAt.After(convs[j].UpdatedAt)
	})
	if len(convs) > conversationLimit {
		convs = convs[:conversationLimit]
	}
	return convs, nil
}

func (s *MemStorage) UpdateConversationStatus(ctx context.Context, id uuid.UUID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conv, exists := s.conversations[id]; exists {
		conv.Status = status
		conv.UpdatedAt = time.Now()
	}
	return nil
}

func (s *MemStorage) CreateMessage(ctx context.Context, conversationID uuid.UUID, content string, isUser int) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, exists := s.conversations[conversationID]
	if !exists {
		return nil, ErrNotFound
	}
	now := time.Now()
	msg := &models.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Content:        content,
		IsUser:         isUser,
		CreatedAt:      now,
	}
	s.messages[conversationID] = append(s.messages[conversationID], msg)
	conv.UpdatedAt = now
	c := *msg
	return &c, nil
}

func (s *MemStorage) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.messages[conversationID]
	msgs := make([]models.Message, 0, len(stored))
	for _, m := range stored {
		msgs = append(msgs, *m)
	}
	// Appended in creation order already; stable sort keeps that order
	// for identical timestamps.
	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.Before(msgs[j].CreatedAt)
	})
	return msgs, nil
}

func (s *MemStorage) ComputeStats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &Stats{
		ResponseTime: "2.3s",
		Satisfaction: "94%",
	}
	midnight := startOfToday()
	for _, conv := range s.conversations {
		switch {
		case conv.Status == models.StatusActive:
			stats.ActiveChats++
		case conv.Status == models.StatusResolved && !conv.UpdatedAt.Before(midnight):
			stats.ResolvedToday++
		}
	}
	return stats, nil
}

// RunInTransaction runs fn inline. The in-memory tables have no
// rollback, but every mutation here either fully applies or fails
// before writing, so fn observes the same all-or-nothing contract as
// the database backend.
func (s *MemStorage) RunInTransaction(ctx context.Context, fn func(Storage) error) error {
	return fn(s)
}

func (s *MemStorage) Close() error {
	// Nothing to release for the in-memory backend.
	return nil
}

// startOfToday is midnight in server-local time.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
