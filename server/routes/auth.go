package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/controllers"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/types"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, 0, badRequest("body", "must be valid JSON")
		}
		user, err := ctrl.Signup(r.Context(), req.Username, req.Password)
		if err != nil {
			return nil, 0, err
		}
		return user, http.StatusCreated, nil
	}))

	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, 0, badRequest("body", "must be valid JSON")
		}
		token, err := ctrl.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			return nil, 0, err
		}
		return map[string]string{"token": token}, http.StatusOK, nil
	}))

	return r
}
