// Package assessment は評価提出のドメインロジックを提供する。
package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hitoshi/assessman/internal/model"
	"github.com/hitoshi/assessman/internal/repository"
	"github.com/hitoshi/assessman/internal/security"
)

// MetricsRecorder は評価提出のメトリクス記録インターフェース。
type MetricsRecorder interface {
	RecordAssessmentSubmitted()
}

// SubmitInput は評価提出の入力。
// 数値フィールドはポインタで「存在」を表す（ゼロ値は有効な値）。
type SubmitInput struct {
	ImageID         string
	FinalScale      *float64
	FinalTranslateX *float64
	FinalTranslateY *float64
	ResponseText    string
	// Timestamp はクライアント供給の提出時刻。書式は検証せず不透明な
	// 文字列として扱う。空の場合はサーバー時刻を採番する。
	Timestamp string
}

// Service は評価提出のサービス層。
// バリデーション、ID採番、サニタイズ、追記を担う。
type Service struct {
	assessmentRepo repository.AssessmentRepository
	sanitizer      security.TextSanitizerService
	metrics        MetricsRecorder
	now            func() time.Time
}

// NewService はServiceの新しいインスタンスを生成する。
// metricsはnilを許容する（テスト用）。
func NewService(assessmentRepo repository.AssessmentRepository, sanitizer security.TextSanitizerService, metrics MetricsRecorder) *Service {
	return &Service{
		assessmentRepo: assessmentRepo,
		sanitizer:      sanitizer,
		metrics:        metrics,
		now:            time.Now,
	}
}

// Submit は評価を検証・採番してストアに追記し、生成されたレコードを返す。
// 必須フィールドが欠けている場合はMISSING_FIELDエラーを返し、何も追記しない。
// AssessmentIDはUUIDベースで採番するため、同時提出でも衝突しない。
func (s *Service) Submit(ctx context.Context, userID string, input SubmitInput) (*model.Assessment, error) {
	if missing := missingFields(input); len(missing) > 0 {
		return nil, model.NewMissingFieldError(strings.Join(missing, ", "))
	}

	submittedAt := input.Timestamp
	if submittedAt == "" {
		submittedAt = s.now().UTC().Format(time.RFC3339)
	}

	a := &model.Assessment{
		AssessmentID:    "asm_" + uuid.NewString(),
		UserID:          userID,
		ImageID:         input.ImageID,
		FinalScale:      *input.FinalScale,
		FinalTranslateX: *input.FinalTranslateX,
		FinalTranslateY: *input.FinalTranslateY,
		ResponseText:    s.sanitizer.Sanitize(input.ResponseText),
		SubmittedAt:     submittedAt,
	}

	if err := s.assessmentRepo.Append(ctx, a); err != nil {
		return nil, fmt.Errorf("評価の保存に失敗しました: %w", err)
	}

	slog.Info("assessment submitted",
		slog.String("assessment_id", a.AssessmentID),
		slog.String("user_id", userID),
		slog.String("image_id", a.ImageID),
	)
	if s.metrics != nil {
		s.metrics.RecordAssessmentSubmitted()
	}

	return a, nil
}

// missingFields は欠落している必須フィールド名の一覧を返す。
func missingFields(input SubmitInput) []string {
	var missing []string
	if input.ImageID == "" {
		missing = append(missing, "imageId")
	}
	if input.FinalScale == nil {
		missing = append(missing, "finalScale")
	}
	if input.FinalTranslateX == nil {
		missing = append(missing, "finalTranslateX")
	}
	if input.FinalTranslateY == nil {
		missing = append(missing, "finalTranslateY")
	}
	if input.ResponseText == "" {
		missing = append(missing, "responseText")
	}
	return missing
}
