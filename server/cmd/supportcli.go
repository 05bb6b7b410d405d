// Console chat client against a seeded in-memory store, for trying the
// responder without running the HTTP server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/controllers"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/services/responder"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/types"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/utils/logging"
)

func main() {
	logging.InitLogger()
	ctx := context.Background()

	store := storage.NewMemStorage()
	if err := storage.Seed(ctx, store, storage.DefaultSeedFaqs()); err != nil {
		fmt.Fprintln(os.Stderr, "seed error:", err)
		os.Exit(1)
	}
	ctrl := controllers.NewChatController(store, responder.New(store))

	fmt.Println("Support assistant ready. Type a message, or 'exit' to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	var conversationID string
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if line == "" {
			continue
		}
		resp, err := ctrl.Resolve(ctx, types.ChatRequest{
			Content:        line,
			ConversationID: conversationID,
		})
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		conversationID = resp.ConversationID
		fmt.Println("bot>", resp.AIMessage.Content)
	}
}
