package types

import "github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/models"

// ChatRequest is one inbound widget message. ConversationID is optional;
// when absent (or stale) a fresh conversation is opened for UserName.
type ChatRequest struct {
	Content        string `json:"content"`
	ConversationID string `json:"conversationId,omitempty"`
	UserName       string `json:"userName,omitempty"`
}

type ChatResponse struct {
	ConversationID string         `json:"conversationId"`
	UserMessage    models.Message `json:"userMessage"`
	AIMessage      models.Message `json:"aiMessage"`
}

// ConversationSummary annotates a conversation for the dashboard list.
type ConversationSummary struct {
	models.Conversation
	LastMessage  string `json:"lastMessage"`
	MessageCount int    `json:"messageCount"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
