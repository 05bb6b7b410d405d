package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/controllers"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/types"
)

func ConversationRoutes(ctrl *controllers.ConversationController) chi.Router {
	r := chi.NewRouter()

	// GET /conversations : up to 10 most recently updated, annotated
	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		summaries, err := ctrl.ListConversations(r.Context())
		if err != nil {
			return nil, 0, err
		}
		return summaries, http.StatusOK, nil
	}))

	// GET /conversations/{id}/messages : ascending by creation time
	r.Get("/{id}/messages", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			return nil, 0, storage.ErrNotFound
		}
		msgs, err := ctrl.GetMessages(r.Context(), id)
		if err != nil {
			return nil, 0, err
		}
		return msgs, http.StatusOK, nil
	}))

	// PUT /conversations/{id}/status : agent marks a thread resolved
	r.Put("/{id}/status", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			return nil, 0, storage.ErrNotFound
		}
		var req types.UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, 0, badRequest("body", "must be valid JSON")
		}
		if err := ctrl.UpdateStatus(r.Context(), id, req.Status); err != nil {
			return nil, 0, err
		}
		return map[string]string{"message": "status updated"}, http.StatusOK, nil
	}))

	return r
}

func StatsRoutes(ctrl *controllers.ConversationController) chi.Router {
	r := chi.NewRouter()
	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		stats, err := ctrl.Stats(r.Context())
		if err != nil {
			return nil, 0, err
		}
		return stats, http.StatusOK, nil
	}))
	return r
}
