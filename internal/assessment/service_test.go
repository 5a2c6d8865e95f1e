package assessment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hitoshi/assessman/internal/model"
	"github.com/hitoshi/assessman/internal/repository"
	"github.com/hitoshi/assessman/internal/security"
)

func f64(v float64) *float64 { return &v }

func validInput() SubmitInput {
	return SubmitInput{
		ImageID:         "img001",
		FinalScale:      f64(1.5),
		FinalTranslateX: f64(-20),
		FinalTranslateY: f64(0),
		ResponseText:    "中央に寄せて拡大しました。",
	}
}

func newTestService() (*Service, *repository.MemoryAssessmentRepo) {
	repo := repository.NewMemoryAssessmentRepo()
	svc := NewService(repo, security.NewTextSanitizer(), nil)
	return svc, repo
}

func TestService_Submit_AppendsExactlyOne(t *testing.T) {
	svc, repo := newTestService()

	a, err := svc.Submit(context.Background(), "user1", validInput())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if !strings.HasPrefix(a.AssessmentID, "asm_") {
		t.Errorf("AssessmentID = %q, want asm_ prefix", a.AssessmentID)
	}
	if a.UserID != "user1" {
		t.Errorf("UserID = %q, want %q", a.UserID, "user1")
	}
	if a.FinalScale != 1.5 || a.FinalTranslateX != -20 || a.FinalTranslateY != 0 {
		t.Errorf("transform = (%v, %v, %v), want (1.5, -20, 0)",
			a.FinalScale, a.FinalTranslateX, a.FinalTranslateY)
	}

	list, _ := repo.List(context.Background())
	if len(list) != 1 {
		t.Errorf("stored count = %d, want 1", len(list))
	}
}

func TestService_Submit_GeneratesUniqueIDs(t *testing.T) {
	svc, _ := newTestService()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		a, err := svc.Submit(context.Background(), "user1", validInput())
		if err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		if seen[a.AssessmentID] {
			t.Fatalf("duplicate AssessmentID %q", a.AssessmentID)
		}
		seen[a.AssessmentID] = true
	}
}

func TestService_Submit_MissingResponseText_AppendsNothing(t *testing.T) {
	svc, repo := newTestService()

	input := validInput()
	input.ResponseText = ""

	_, err := svc.Submit(context.Background(), "user1", input)
	if err == nil {
		t.Fatal("expected error for missing responseText")
	}

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if apiErr.Code != model.ErrCodeMissingField {
		t.Errorf("Code = %q, want %q", apiErr.Code, model.ErrCodeMissingField)
	}
	if !strings.Contains(apiErr.Message, "responseText") {
		t.Errorf("Message = %q, should name responseText", apiErr.Message)
	}

	list, _ := repo.List(context.Background())
	if len(list) != 0 {
		t.Errorf("stored count = %d, want 0", len(list))
	}
}

func TestService_Submit_MissingNumericFields_Fails(t *testing.T) {
	svc, _ := newTestService()

	input := validInput()
	input.FinalScale = nil
	input.FinalTranslateY = nil

	_, err := svc.Submit(context.Background(), "user1", input)
	if err == nil {
		t.Fatal("expected error for missing numeric fields")
	}

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T", err)
	}
	if !strings.Contains(apiErr.Message, "finalScale") || !strings.Contains(apiErr.Message, "finalTranslateY") {
		t.Errorf("Message = %q, should name both missing fields", apiErr.Message)
	}
}

func TestService_Submit_ZeroIsValidNumericValue(t *testing.T) {
	svc, _ := newTestService()

	input := validInput()
	input.FinalScale = f64(0)
	input.FinalTranslateX = f64(0)
	input.FinalTranslateY = f64(0)

	a, err := svc.Submit(context.Background(), "user1", input)
	if err != nil {
		t.Fatalf("Submit failed with zero values: %v", err)
	}
	if a.FinalScale != 0 {
		t.Errorf("FinalScale = %v, want 0", a.FinalScale)
	}
}

func TestService_Submit_ClientTimestampPassedThroughOpaque(t *testing.T) {
	svc, _ := newTestService()

	input := validInput()
	input.Timestamp = "not-even-a-date"

	a, err := svc.Submit(context.Background(), "user1", input)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if a.SubmittedAt != "not-even-a-date" {
		t.Errorf("SubmittedAt = %q, want client value passed through", a.SubmittedAt)
	}
}

func TestService_Submit_NoTimestamp_UsesServerClock(t *testing.T) {
	svc, _ := newTestService()
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	a, err := svc.Submit(context.Background(), "user1", validInput())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if a.SubmittedAt != "2026-08-30T12:00:00Z" {
		t.Errorf("SubmittedAt = %q, want %q", a.SubmittedAt, "2026-08-30T12:00:00Z")
	}
}

func TestService_Submit_SanitizesResponseText(t *testing.T) {
	svc, _ := newTestService()

	input := validInput()
	input.ResponseText = `ok<script>alert(1)</script>`

	a, err := svc.Submit(context.Background(), "user1", input)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if a.ResponseText != "ok" {
		t.Errorf("ResponseText = %q, want sanitized %q", a.ResponseText, "ok")
	}
}

func TestService_Submit_ConcurrentSubmissions_UniqueAndComplete(t *testing.T) {
	svc, repo := newTestService()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.Submit(context.Background(), "user1", validInput()); err != nil {
				t.Errorf("Submit failed: %v", err)
			}
		}()
	}
	wg.Wait()

	list, _ := repo.List(context.Background())
	if len(list) != goroutines {
		t.Errorf("stored count = %d, want %d", len(list), goroutines)
	}

	seen := make(map[string]bool)
	for _, a := range list {
		if seen[a.AssessmentID] {
			t.Errorf("duplicate AssessmentID %q", a.AssessmentID)
		}
		seen[a.AssessmentID] = true
	}
}
