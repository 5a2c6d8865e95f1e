// Package auth は認証のドメインロジックを提供する。
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hitoshi/assessman/internal/model"
	"github.com/hitoshi/assessman/internal/repository"
)

// TokenIssuer はログイン成功時のトークン発行インターフェース。
type TokenIssuer interface {
	Issue(user *model.User) string
}

// MetricsRecorder はログイン結果のメトリクス記録インターフェース。
type MetricsRecorder interface {
	RecordLoginSuccess()
	RecordLoginFailure()
}

// Service は認証のサービス層。
// 認証情報の照合とトークン発行を提供する。
type Service struct {
	userRepo repository.UserRepository
	issuer   TokenIssuer
	metrics  MetricsRecorder
}

// NewService はServiceの新しいインスタンスを生成する。
// metricsはnilを許容する（テスト用）。
func NewService(userRepo repository.UserRepository, issuer TokenIssuer, metrics MetricsRecorder) *Service {
	return &Service{
		userRepo: userRepo,
		issuer:   issuer,
		metrics:  metrics,
	}
}

// Login は認証情報を照合し、成功時にトークンとユーザーを返す。
// ユーザー名不明とパスワード不一致はいずれも同一のログイン失敗エラーになる。
// パスワード照合は平文の完全一致（デモ用プレースホルダー。本番では
// ソルト付きハッシュと定数時間比較への置き換えが必須）。
func (s *Service) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, fmt.Errorf("ユーザーの取得に失敗しました: %w", err)
	}
	if user == nil || user.Password != password {
		slog.Warn("login failed",
			slog.String("username", username),
		)
		if s.metrics != nil {
			s.metrics.RecordLoginFailure()
		}
		return "", nil, model.NewLoginFailedError()
	}

	tok := s.issuer.Issue(user)

	slog.Info("login succeeded",
		slog.String("user_id", user.ID),
	)
	if s.metrics != nil {
		s.metrics.RecordLoginSuccess()
	}

	return tok, user, nil
}
