// Package repository はレコードストアのインターフェースを定義する。
//
// 本システムのストアはインメモリ実装のみ（プロセス再起動でリセット）だが、
// ハンドラーやサービス層はこのインターフェース経由でアクセスするため、
// 永続化レイヤーへの差し替えポイントはここに集約される。
package repository

import (
	"context"

	"github.com/hitoshi/assessman/internal/model"
)

// UserRepository はユーザーデータの参照インターフェース。
// ユーザーはシードデータとして投入され、以降はイミュータブル。
type UserRepository interface {
	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id string) (*model.User, error)

	// FindByUsername は指定ユーザー名のユーザーを取得する。見つからない場合はnilを返す。
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// ImageRepository は画像データと割当関係の参照インターフェース。
type ImageRepository interface {
	// ListAssignedTo は指定ユーザーに割り当てられた画像一覧を返す。
	// 割当が存在しない場合は空スライスを返す。順序は画像シード順を保持する。
	ListAssignedTo(ctx context.Context, userID string) ([]model.Image, error)
}

// AssessmentRepository は評価データの追記専用インターフェース。
type AssessmentRepository interface {
	// Append は評価を追記する。バリデーションは呼び出し側の責務。
	Append(ctx context.Context, assessment *model.Assessment) error

	// List は全評価のスナップショットを提出順で返す。
	List(ctx context.Context) ([]model.Assessment, error)
}
