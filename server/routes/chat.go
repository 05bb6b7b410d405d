package routes

import (
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/controllers"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/types"
)

func ChatRoutes(ctrl *controllers.ChatController) chi.Router {
	r := chi.NewRouter()

	// POST /chat/message : resolve one widget message
	r.Post("/message", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, 0, badRequest("body", "must be valid JSON")
		}
		resp, err := ctrl.Resolve(r.Context(), req)
		if err != nil {
			return nil, 0, err
		}
		return resp, http.StatusOK, nil
	}))

	// GET /chat/ws : persistent widget connection; each received chat
	// request is resolved and the response written back on the socket.
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			if typ != websocket.MessageText {
				conn.Close(websocket.StatusUnsupportedData, "unsupported data")
				return
			}
			var req types.ChatRequest
			if err := json.Unmarshal(data, &req); err != nil {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`))
				continue
			}
			resp, err := ctrl.Resolve(ctx, req)
			if err != nil {
				payload, _ := json.Marshal(map[string]string{"error": clientMessage(err)})
				conn.Write(ctx, websocket.MessageText, payload)
				continue
			}
			payload, err := json.Marshal(resp)
			if err != nil {
				return
			}
			if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
				return
			}
		}
	})

	return r
}
