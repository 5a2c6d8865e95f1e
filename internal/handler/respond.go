// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/assessman/internal/middleware"
	"github.com/hitoshi/assessman/internal/model"
)

// writeJSON はJSONレスポンスを書き込む。
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// statusForAPIError はエラーコードをHTTPステータスコードに対応付ける。
func statusForAPIError(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeMissingField:
		return http.StatusBadRequest
	case model.ErrCodeLoginFailed, model.ErrCodeTokenNotProvided:
		return http.StatusUnauthorized
	case model.ErrCodeInvalidToken, model.ErrCodeUnknownTokenUser:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// handleServiceError はサービス層のエラーをHTTPレスポンスに変換する。
// APIErrorは対応するステータスで、それ以外はログに記録して500で返す。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		middleware.WriteErrorResponse(w, statusForAPIError(apiErr), apiErr)
		return
	}

	slog.Error("unexpected service error", slog.String("error", err.Error()))
	middleware.WriteInternalServerError(w)
}

// writeUnauthenticated は認証ミドルウェア未通過のリクエストに401を返す。
// 通常ルーティングが保証するため到達しないが、ハンドラー単体でも安全に振る舞う。
func writeUnauthenticated(w http.ResponseWriter) {
	middleware.WriteErrorResponse(w, http.StatusUnauthorized, model.NewTokenNotProvidedError())
}
