package controllers

import (
	"context"

	"github.com/google/uuid"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/models"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/types"
)

type FaqController struct {
	store storage.Storage
}

func NewFaqController(store storage.Storage) *FaqController {
	return &FaqController{store: store}
}

func (c *FaqController) ListFaqs(ctx context.Context) ([]models.Faq, error) {
	return c.store.ListFaqs(ctx)
}

func (c *FaqController) CreateFaq(ctx context.Context, req types.CreateFaqRequest) (*models.Faq, error) {
	if len(req.Keywords) == 0 {
		return nil, &storage.ValidationError{Field: "keywords", Reason: "must not be empty"}
	}
	return c.store.CreateFaq(ctx, storage.FaqInput{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Keywords: req.Keywords,
	})
}

func (c *FaqController) UpdateFaq(ctx context.Context, id uuid.UUID, req types.UpdateFaqRequest) (*models.Faq, error) {
	return c.store.UpdateFaq(ctx, id, storage.FaqUpdate{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Keywords: req.Keywords,
	})
}

func (c *FaqController) DeleteFaq(ctx context.Context, id uuid.UUID) error {
	existed, err := c.store.DeleteFaq(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return storage.ErrNotFound
	}
	return nil
}
