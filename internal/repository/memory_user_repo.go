package repository

import (
	"context"

	"github.com/hitoshi/assessman/internal/model"
)

// MemoryUserRepo はインメモリのユーザーリポジトリ。
// シードデータを保持し、起動後は読み取り専用のためロック不要。
type MemoryUserRepo struct {
	users []model.User
}

// NewMemoryUserRepo は指定されたシードデータでMemoryUserRepoを生成する。
func NewMemoryUserRepo(users []model.User) *MemoryUserRepo {
	return &MemoryUserRepo{users: users}
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// FindByUsername は指定ユーザー名のユーザーを取得する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// compile-time interface check
var _ UserRepository = (*MemoryUserRepo)(nil)
