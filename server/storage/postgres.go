package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/config"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/models"
)

// GormStorage implements Storage on a relational database. Timestamps
// are assigned in Go rather than by gorm so the updated_at rules match
// the in-memory backend exactly.
type GormStorage struct {
	db *gorm.DB
}

// Open connects to Postgres and migrates the schema.
func Open(ctx context.Context, cfg config.Config) (*GormStorage, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)
	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return NewGormStorage(ctx, db)
}

// NewGormStorage wraps an already-open gorm connection; tests use it
// with sqlite.
func NewGormStorage(ctx context.Context, db *gorm.DB) (*GormStorage, error) {
	err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Faq{},
		&models.Conversation{},
		&models.Message{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return &GormStorage{db: db}, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if password == "" {
		return nil, &ValidationError{Field: "password", Reason: "must not be empty"}
	}
	existing, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Field: "username", Reason: "already taken"}
	}
	user := models.User{
		ID:       uuid.New(),
		Username: username,
		Password: password,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStorage) CreateFaq(ctx context.Context, input FaqInput) (*models.Faq, error) {
	if err := validateFaqInput(input); err != nil {
		return nil, err
	}
	now := time.Now()
	faq := models.Faq{
		ID:         uuid.New(),
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Keywords:   append([]string(nil), input.Keywords...),
		UsageCount: 0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.db.WithContext(ctx).Create(&faq).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *GormStorage) GetFaq(ctx context.Context, id uuid.UUID) (*models.Faq, error) {
	var faq models.Faq
	err := s.db.WithContext(ctx).First(&faq, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *GormStorage) UpdateFaq(ctx context.Context, id uuid.UUID, update FaqUpdate) (*models.Faq, error) {
	if err := validateFaqUpdate(update); err != nil {
		return nil, err
	}
	faq, err := s.GetFaq(ctx, id)
	if err != nil {
		return nil, err
	}
	if faq == nil {
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
	if err := s.db.WithContext(ctx).Save(faq).Error; err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *GormStorage) DeleteFaq(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Faq{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (s *GormStorage) ListFaqs(ctx context.Context) ([]models.Faq, error) {
	var faqs []models.Faq
	err := s.db.WithContext(ctx).
		Order("usage_count desc, created_at asc, id asc").
		Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	return faqs, nil
}

func (s *GormStorage) SearchFaqs(ctx context.Context, query string) ([]models.Faq, error) {
	// Keywords live in a serialized column, so the substring rule runs
	// in Go over creation order rather than in SQL. The id tie-break
	// keeps "first match" stable for rows created in the same tick.
	var faqs []models.Faq
	err := s.db.WithContext(ctx).Order("created_at asc, id asc").Find(&faqs).Error
	if err != nil {
		return nil, err
	}
	lowered := strings.ToLower(query)
	var matches []models.Faq
	for i := range faqs {
		if matchesFaq(&faqs[i], lowered) {
			matches = append(matches, faqs[i])
		}
	}
	return matches, nil
}

func (s *GormStorage) IncrementFaqUsage(ctx context.Context, id uuid.UUID) error {
	// UpdateColumn leaves updated_at alone, matching the in-memory rule.
	return s.db.WithContext(ctx).
		Model(&models.Faq{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}

func (s *GormStorage) CreateConversation(ctx context.Context, userName string) (*models.Conversation, error) {
	now := time.Now()
	conv := models.Conversation{
		ID:        uuid.New(),
		UserName:  userName,
		Status:    models.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&conv).Error; err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *GormStorage) GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	err := s.db.WithContext(ctx).First(&conv, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (s *GormStorage) ListConversations(ctx context.Context) ([]models.Conversation, error) {
	var convs []models.Conversation
	err := s.db.WithContext(ctx).
		Order("updated_at desc").
		Limit(conversationLimit).
		Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

func (s *GormStorage) UpdateConversationStatus(ctx context.Context, id uuid.UUID, status string) error {
	return s.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (s *GormStorage) CreateMessage(ctx context.Context, conversationID uuid.UUID, content string, isUser int) (*models.Message, error) {
	now := time.Now()
	msg := models.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		Content:        content,
		IsUser:         isUser,
		CreatedAt:      now,
	}
	// The message insert and the parent touch commit together.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conv models.Conversation
		if err := tx.First(&conv, "id = ?", conversationID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Create(&msg).Error; err != nil {
			return err
		}
		return tx.Model(&models.Conversation{}).
			Where("id = ?", conversationID).
			UpdateColumn("updated_at", now).Error
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *GormStorage) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]models.Message, error) {
	var msgs []models.Message
	err := s.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at asc").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *GormStorage) ComputeStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{
		ResponseTime: "2.3s",
		Satisfaction: "94%",
	}
	var active int64
	err := s.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("status = ?", models.StatusActive).
		Count(&active).Error
	if err != nil {
		return nil, err
	}
	var resolved int64
	err = s.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("status = ? AND updated_at >= ?", models.StatusResolved, startOfToday()).
		Count(&resolved).Error
	if err != nil {
		return nil, err
	}
	stats.ActiveChats = int(active)
	stats.ResolvedToday = int(resolved)
	return stats, nil
}

// RunInTransaction spans fn over a single database transaction. Nested
// store calls that open their own transaction become savepoints.
func (s *GormStorage) RunInTransaction(ctx context.Context, fn func(Storage) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStorage{db: tx})
	})
}

func (s *GormStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
