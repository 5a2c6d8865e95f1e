package repository

import (
	"context"
	"sync"

	"github.com/hitoshi/assessman/internal/model"
)

// MemoryAssessmentRepo はインメモリの評価リポジトリ。
// 追記専用のスライスをミューテックスで直列化し、
// 同時提出時の更新ロストを防ぐ。
type MemoryAssessmentRepo struct {
	mu          sync.Mutex
	assessments []model.Assessment
}

// NewMemoryAssessmentRepo は空のMemoryAssessmentRepoを生成する。
func NewMemoryAssessmentRepo() *MemoryAssessmentRepo {
	return &MemoryAssessmentRepo{}
}

// Append は評価を追記する。常に成功する。
func (r *MemoryAssessmentRepo) Append(ctx context.Context, assessment *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assessments = append(r.assessments, *assessment)
	return nil
}

// List は全評価のスナップショットを提出順で返す。
// 内部スライスのコピーを返すため、呼び出し側の変更は反映されない。
func (r *MemoryAssessmentRepo) List(ctx context.Context) ([]model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := make([]model.Assessment, len(r.assessments))
	copy(snapshot, r.assessments)
	return snapshot, nil
}

// compile-time interface check
var _ AssessmentRepository = (*MemoryAssessmentRepo)(nil)
