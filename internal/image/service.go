// Package image は画像割当のドメインロジックを提供する。
package image

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/assessman/internal/model"
	"github.com/hitoshi/assessman/internal/repository"
)

// Service は画像割当のサービス層。
// 認証済みユーザーへの割当画像一覧を提供する。
type Service struct {
	imageRepo repository.ImageRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(imageRepo repository.ImageRepository) *Service {
	return &Service{imageRepo: imageRepo}
}

// ListAssignedImages は指定ユーザーに割り当てられた画像一覧を返す。
// 割当が存在しない場合は空スライスを返す（エラーにはしない）。
func (s *Service) ListAssignedImages(ctx context.Context, userID string) ([]model.Image, error) {
	images, err := s.imageRepo.ListAssignedTo(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("割当画像の取得に失敗しました: %w", err)
	}

	slog.Info("assigned images listed",
		slog.String("user_id", userID),
		slog.Int("count", len(images)),
	)

	return images, nil
}
