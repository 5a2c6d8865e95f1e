package handler

import "net/http"

// SystemHandler はグリーティングとヘルスチェックのHTTPハンドラー。
type SystemHandler struct {
	greeting string
}

// NewSystemHandler はSystemHandlerを生成する。
func NewSystemHandler(greeting string) *SystemHandler {
	return &SystemHandler{greeting: greeting}
}

// greetingResponse はグリーティングレスポンス。
type greetingResponse struct {
	Message string `json:"message"`
}

// Greeting はAPIのグリーティングを返す。認証不要。
// GET /api
func (h *SystemHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, greetingResponse{Message: h.greeting})
}

// Health はヘルスチェックに応答する。
// ストアはインメモリのため、プロセスが応答できれば健全とみなす。
// GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
