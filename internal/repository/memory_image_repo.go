package repository

import (
	"context"

	"github.com/hitoshi/assessman/internal/model"
)

// MemoryImageRepo はインメモリの画像リポジトリ。
// 画像と割当関係のシードデータを保持し、起動後は読み取り専用。
type MemoryImageRepo struct {
	images      []model.Image
	assignments []model.Assignment
}

// NewMemoryImageRepo は指定されたシードデータでMemoryImageRepoを生成する。
func NewMemoryImageRepo(images []model.Image, assignments []model.Assignment) *MemoryImageRepo {
	return &MemoryImageRepo{
		images:      images,
		assignments: assignments,
	}
}

// ListAssignedTo は指定ユーザーに割り当てられた画像一覧を返す。
// 割当をユーザーIDでフィルタして画像ID集合を作り、
// 画像シード順を保ったままその集合に含まれる画像を返す。
func (r *MemoryImageRepo) ListAssignedTo(ctx context.Context, userID string) ([]model.Image, error) {
	assigned := make(map[string]struct{})
	for _, a := range r.assignments {
		if a.UserID == userID {
			assigned[a.ImageID] = struct{}{}
		}
	}

	images := make([]model.Image, 0, len(assigned))
	for _, img := range r.images {
		if _, ok := assigned[img.ID]; ok {
			images = append(images, img)
		}
	}
	return images, nil
}

// compile-time interface check
var _ ImageRepository = (*MemoryImageRepo)(nil)
