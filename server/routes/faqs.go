package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/config"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/controllers"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/middlewares"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/types"
)

func FaqRoutes(ctrl *controllers.FaqController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	// GET /faqs : ordered by usage, most used first
	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		faqs, err := ctrl.ListFaqs(r.Context())
		if err != nil {
			return nil, 0, err
		}
		return faqs, http.StatusOK, nil
	}))

	// Mutations sit behind the admin token when auth is enabled.
	r.Group(func(gr chi.Router) {
		if cfg.AuthEnabled {
			gr.Use(middlewares.AuthMiddleware(cfg))
		}

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.CreateFaqRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, 0, badRequest("body", "must be valid JSON")
			}
			faq, err := ctrl.CreateFaq(r.Context(), req)
			if err != nil {
				return nil, 0, err
			}
			return faq, http.StatusCreated, nil
		}))

		gr.Put("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			id, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				return nil, 0, storage.ErrNotFound
			}
			var req types.UpdateFaqRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, 0, badRequest("body", "must be valid JSON")
			}
			faq, err := ctrl.UpdateFaq(r.Context(), id, req)
			if err != nil {
				return nil, 0, err
			}
			return faq, http.StatusOK, nil
		}))

		gr.Delete("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			id, err := uuid.Parse(chi.URLParam(r, "id"))
			if err != nil {
				return nil, 0, storage.ErrNotFound
			}
			if err := ctrl.DeleteFaq(r.Context(), id); err != nil {
				return nil, 0, err
			}
			return map[string]string{"message": "FAQ deleted successfully"}, http.StatusOK, nil
		}))
	})

	return r
}
