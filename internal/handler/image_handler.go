package handler

import (
	"context"
	"net/http"

	"github.com/hitoshi/assessman/internal/middleware"
	"github.com/hitoshi/assessman/internal/model"
)

// ImageServiceInterface は画像ハンドラーが必要とするサービスインターフェース。
type ImageServiceInterface interface {
	// ListAssignedImages は指定ユーザーに割り当てられた画像一覧を返す。
	ListAssignedImages(ctx context.Context, userID string) ([]model.Image, error)
}

// ImageHandler は画像割当のHTTPハンドラー。
type ImageHandler struct {
	service ImageServiceInterface
}

// NewImageHandler はImageHandlerを生成する。
func NewImageHandler(service ImageServiceInterface) *ImageHandler {
	return &ImageHandler{service: service}
}

// MyImages は認証済みユーザーの割当画像一覧を返す。
// 割当がない場合は空配列を返す（認証済みであれば失敗しない）。
// GET /api/images/my-images
func (h *ImageHandler) MyImages(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeUnauthenticated(w)
		return
	}

	images, err := h.service.ListAssignedImages(r.Context(), user.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, images)
}
