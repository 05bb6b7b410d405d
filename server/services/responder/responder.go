// Rule-based reply engine for the support chat widget.
package responder

import (
	"context"
	"strings"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
)

// rule maps trigger substrings to a canned reply. Rules are evaluated
// in order and the first hit wins, so broad triggers like "help" sit at
// the bottom of the table.
type rule struct {
	triggers []string
	reply    string
}

var rules = []rule{
	{
		triggers: []string{"hello", "hi", "hey"},
		reply:    "Hello! I'm here to help you with any questions you might have. What can I assist you with today?",
	},
	{
		triggers: []string{"thank", "thanks"},
		reply:    "You're welcome! Is there anything else I can help you with?",
	},
	{
		triggers: []string{"bye", "goodbye"},
		reply:    "Goodbye! Feel free to come back if you need any assistance. Have a great day!",
	},
	{
		triggers: []string{"account", "login"},
		reply:    "I can help you with account-related questions. Are you having trouble logging in, or do you need help with account settings?",
	},
	{
		triggers: []string{"order", "track", "shipping"},
		reply:    "For order-related inquiries, I can help you track your order or answer questions about shipping. Do you have an order number I can look up?",
	},
	{
		triggers: []string{"bill", "payment", "subscription"},
		reply:    "I can assist with billing and payment questions. Are you looking to update payment information, view your bill, or manage your subscription?",
	},
	{
		triggers: []string{"cancel", "refund"},
		reply:    "I understand you're looking for help with cancellation or refunds. Let me connect you with the right information to assist you with this process.",
	},
	{
		triggers: []string{"help", "support"},
		reply:    "I'm here to help! You can ask me about account issues, orders, billing, or general questions. What specific topic would you like assistance with?",
	},
}

const fallbackReply = "Thank you for your message. I'd be happy to help you with that. Could you provide more details about your specific question or concern? You can also try asking about common topics like account help, order tracking, or billing questions."

type Responder struct {
	store storage.Storage
}

func New(store storage.Storage) *Responder {
	return &Responder{store: store}
}

// Reply computes the automated answer for a user message. A FAQ match
// short-circuits the rule table: the first match's answer is returned
// verbatim and its usage count is incremented exactly once.
func (r *Responder) Reply(ctx context.Context, content string) (string, error) {
	return r.ReplyUsing(ctx, r.store, content)
}

// ReplyUsing is Reply against a caller-supplied store, so the resolver
// can run the lookup and usage increment inside its own transaction.
func (r *Responder) ReplyUsing(ctx context.Context, store storage.Storage, content string) (string, error) {
	matches, err := store.SearchFaqs(ctx, content)
	if err != nil {
		return "", err
	}
	if len(matches) > 0 {
		best := matches[0]
		if err := store.IncrementFaqUsage(ctx, best.ID); err != nil {
			return "", err
		}
		return best.Answer, nil
	}

	lowered := strings.ToLower(content)
	for _, rl := range rules {
		for _, trigger := range rl.triggers {
			if strings.Contains(lowered, trigger) {
				return rl.reply, nil
			}
		}
	}
	return fallbackReply, nil
}
