package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hitoshi/assessman/internal/assessment"
	"github.com/hitoshi/assessman/internal/middleware"
	"github.com/hitoshi/assessman/internal/model"
)

// AssessmentServiceInterface は評価ハンドラーが必要とするサービスインターフェース。
type AssessmentServiceInterface interface {
	// Submit は評価を検証・採番してストアに追記し、生成されたレコードを返す。
	Submit(ctx context.Context, userID string, input assessment.SubmitInput) (*model.Assessment, error)
}

// AssessmentHandler は評価提出のHTTPハンドラー。
type AssessmentHandler struct {
	service AssessmentServiceInterface
}

// NewAssessmentHandler はAssessmentHandlerを生成する。
func NewAssessmentHandler(service AssessmentServiceInterface) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

// submitAssessmentRequest は評価提出リクエストのボディ。
// 数値フィールドはポインタで受け、JSON上の欠落とゼロ値を区別する。
type submitAssessmentRequest struct {
	ImageID         string   `json:"imageId"`
	FinalScale      *float64 `json:"finalScale"`
	FinalTranslateX *float64 `json:"finalTranslateX"`
	FinalTranslateY *float64 `json:"finalTranslateY"`
	ResponseText    string   `json:"responseText"`
	Timestamp       string   `json:"timestamp"`
}

// submitAssessmentResponse は評価提出成功レスポンス。
type submitAssessmentResponse struct {
	Message    string            `json:"message"`
	Assessment *model.Assessment `json:"assessment"`
}

// Submit は評価提出を処理する。
// POST /api/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.UserFromContext(r.Context())
	if err != nil {
		writeUnauthenticated(w)
		return
	}

	var req submitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteErrorResponse(w, http.StatusBadRequest, &model.APIError{
			Code:     "INVALID_REQUEST",
			Message:  "リクエストボディの解析に失敗しました。",
			Category: "validation",
			Action:   "正しいJSON形式でリクエストしてください。",
		})
		return
	}

	created, err := h.service.Submit(r.Context(), user.ID, assessment.SubmitInput{
		ImageID:         req.ImageID,
		FinalScale:      req.FinalScale,
		FinalTranslateX: req.FinalTranslateX,
		FinalTranslateY: req.FinalTranslateY,
		ResponseText:    req.ResponseText,
		Timestamp:       req.Timestamp,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitAssessmentResponse{
		Message:    "評価が正常に提出されました。",
		Assessment: created,
	})
}
