package controllers

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/models"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/services/responder"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/types"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/utils/logging"
)

type ChatController struct {
	store     storage.Storage
	responder *responder.Responder
	// convLocks serializes resolves per conversation id so two
	// concurrent messages on the same thread cannot interleave their
	// read-then-append steps.
	convLocks sync.Map
}

func NewChatController(store storage.Storage, resp *responder.Responder) *ChatController {
	return &ChatController{store: store, responder: resp}
}

func (c *ChatController) lockConversation(id uuid.UUID) func() {
	val, _ := c.convLocks.LoadOrStore(id, &sync.Mutex{})
	mu := val.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Resolve turns one inbound user message into the automated reply:
// load-or-create the conversation, persist the user message, compute
// the reply, persist it, and return all three ids to the caller.
// Validation happens before any store mutation.
func (c *ChatController) Resolve(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	defer logging.LogDuration(ctx, "ChatController.Resolve")()

	if req.Content == "" {
		return nil, &storage.ValidationError{Field: "content", Reason: "must not be empty"}
	}
	userName := req.UserName
	if userName == "" {
		userName = "Anonymous"
	}

	var conv *models.Conversation
	if req.ConversationID != "" {
		// An unparseable or unknown id counts as absent: the widget may
		// hold a stale id from a previous process lifetime.
		if id, err := uuid.Parse(req.ConversationID); err == nil {
			defer c.lockConversation(id)()
			existing, err := c.store.GetConversation(ctx, id)
			if err != nil {
				return nil, err
			}
			conv = existing
		}
	}
	// The conversation, both messages and the FAQ usage bump commit as
	// one unit: a failure anywhere leaves no half-recorded exchange.
	var userMsg, aiMsg *models.Message
	err := c.store.RunInTransaction(ctx, func(tx storage.Storage) error {
		if conv == nil {
			created, err := tx.CreateConversation(ctx, userName)
			if err != nil {
				return err
			}
			conv = created
		}

		um, err := tx.CreateMessage(ctx, conv.ID, req.Content, 1)
		if err != nil {
			return err
		}
		userMsg = um

		reply, err := c.responder.ReplyUsing(ctx, tx, req.Content)
		if err != nil {
			return err
		}

		am, err := tx.CreateMessage(ctx, conv.ID, reply, 0)
		if err != nil {
			return err
		}
		aiMsg = am
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.ChatResponse{
		ConversationID: conv.ID.String(),
		UserMessage:    *userMsg,
		AIMessage:      *aiMsg,
	}, nil
}
