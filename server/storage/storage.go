package storage

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/models"
)

// ErrNotFound is returned when an operation targets an id that does not
// exist in the store.
var ErrNotFound = errors.New("not found")

// ValidationError marks a missing or empty required field. It is raised
// before any mutation takes place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

// FaqInput carries the caller-supplied fields for a new FAQ.
type FaqInput struct {
	Question string
	Answer   string
	Category string
	Keywords []string
}

// FaqUpdate is a partial update; nil fields are left untouched.
type FaqUpdate struct {
	Question *string
	Answer   *string
	Category *string
	Keywords *[]string
}

// Stats is the dashboard read-model, recomputed from store contents on
// every call. ResponseTime and Satisfaction are fixed placeholders until
// real measurement lands.
type Stats struct {
	ActiveChats   int    `json:"activeChats"`
	ResolvedToday int    `json:"resolvedToday"`
	ResponseTime  string `json:"responseTime"`
	Satisfaction  string `json:"satisfaction"`
}

// Storage is the entity store behind the chat resolver and the admin
// dashboard. Get* methods return (nil, nil) when the id is absent.
// Implementations must be safe for concurrent use.
type Storage interface {
	CreateUser(ctx context.Context, username, password string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	CreateFaq(ctx context.Context, input FaqInput) (*models.Faq, error)
	GetFaq(ctx context.Context, id uuid.UUID) (*models.Faq, error)
	UpdateFaq(ctx context.Context, id uuid.UUID, update FaqUpdate) (*models.Faq, error)
	DeleteFaq(ctx context.Context, id uuid.UUID) (bool, error)
	ListFaqs(ctx context.Context) ([]models.Faq, error)
	SearchFaqs(ctx context.Context, query string) ([]models.Faq, error)
	IncrementFaqUsage(ctx context.Context, id uuid.UUID) error

	CreateConversation(ctx context.Context, userName string) (*models.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error)
	ListConversations(ctx context.Context) ([]models.Conversation, error)
	UpdateConversationStatus(ctx context.Context, id uuid.UUID, status string) error

	CreateMessage(ctx context.Context, conversationID uuid.UUID, content string, isUser int) (*models.Message, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]models.Message, error)

	ComputeStats(ctx context.Context) (*Stats, error)

	// RunInTransaction executes fn against a store whose writes commit
	// or roll back as a unit. fn must use only the store it is handed.
	RunInTransaction(ctx context.Context, fn func(Storage) error) error

	Close() error
}

// conversationLimit caps ListConversations to the most recently updated
// threads shown on the dashboard.
const conversationLimit = 10

func validateFaqInput(input FaqInput) error {
	if input.Question == "" {
		return &ValidationError{Field: "question", Reason: "must not be empty"}
	}
	if input.Answer == "" {
		return &ValidationError{Field: "answer", Reason: "must not be empty"}
	}
	if input.Category == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return nil
}

func validateFaqUpdate(update FaqUpdate) error {
	if update.Question != nil && *update.Question == "" {
		return &ValidationError{Field: "question", Reason: "must not be empty"}
	}
	if update.Answer != nil && *update.Answer == "" {
		return &ValidationError{Field: "answer", Reason: "must not be empty"}
	}
	if update.Category != nil && *update.Category == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return nil
}

// matchesFaq implements the matcher rule shared by both backends: the
// lowercased query must be a substring of the lowercased question,
// answer, or any keyword.
func matchesFaq(faq *models.Faq, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(faq.Question), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(faq.Answer), loweredQuery) {
		return true
	}
	for _, keyword := range faq.Keywords {
		if strings.Contains(strings.ToLower(keyword), loweredQuery) {
			return true
		}
	}
	return false
}
