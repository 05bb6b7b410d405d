package controllers

import (
	"context"

	"github.com/google/uuid"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/models"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/types"
)

type ConversationController struct {
	store storage.Storage
}

func NewConversationController(store storage.Storage) *ConversationController {
	return &ConversationController{store: store}
}

// ListConversations returns the ten most recently updated threads,
// each annotated with its latest message and message count for the
// dashboard list.
func (c *ConversationController) ListConversations(ctx context.Context) ([]types.ConversationSummary, error) {
	convs, err := c.store.ListConversations(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]types.ConversationSummary, 0, len(convs))
	for _, conv := range convs {
		msgs, err := c.store.ListMessages(ctx, conv.ID)
		if err != nil {
			return nil, err
		}
		lastMessage := "No messages yet"
		if len(msgs) > 0 {
			lastMessage = msgs[len(msgs)-1].Content
		}
		summaries = append(summaries, types.ConversationSummary{
			Conversation: conv,
			LastMessage:  lastMessage,
			MessageCount: len(msgs),
		})
	}
	return summaries, nil
}

func (c *ConversationController) GetMessages(ctx context.Context, id uuid.UUID) ([]models.Message, error) {
	return c.store.ListMessages(ctx, id)
}

func (c *ConversationController) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.ValidStatus(status) {
		return &storage.ValidationError{Field: "status", Reason: "must be active, resolved or pending"}
	}
	conv, err := c.store.GetConversation(ctx, id)
	if err != nil {
		return err
	}
	if conv == nil {
		return storage.ErrNotFound
	}
	return c.store.UpdateConversationStatus(ctx, id, status)
}

func (c *ConversationController) Stats(ctx context.Context) (*storage.Stats, error) {
	return c.store.ComputeStats(ctx)
}
