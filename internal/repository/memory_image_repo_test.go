package repository

import (
	"context"
	"testing"
)

func TestMemoryImageRepo_ListAssignedTo_User1(t *testing.T) {
	repo := NewMemoryImageRepo(SeedImages(), SeedAssignments())

	images, err := repo.ListAssignedTo(context.Background(), "user1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"img001", "img002", "img003"}
	if len(images) != len(want) {
		t.Fatalf("len(images) = %d, want %d", len(images), len(want))
	}
	for i, id := range want {
		if images[i].ID != id {
			t.Errorf("images[%d].ID = %q, want %q", i, images[i].ID, id)
		}
	}
}

func TestMemoryImageRepo_ListAssignedTo_User2(t *testing.T) {
	repo := NewMemoryImageRepo(SeedImages(), SeedAssignments())

	images, err := repo.ListAssignedTo(context.Background(), "user2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{"img004", "img005"}
	if len(images) != len(want) {
		t.Fatalf("len(images) = %d, want %d", len(images), len(want))
	}
	for i, id := range want {
		if images[i].ID != id {
			t.Errorf("images[%d].ID = %q, want %q", i, images[i].ID, id)
		}
	}
}

func TestMemoryImageRepo_ListAssignedTo_NoAssignments_ReturnsEmpty(t *testing.T) {
	repo := NewMemoryImageRepo(SeedImages(), SeedAssignments())

	images, err := repo.ListAssignedTo(context.Background(), "test1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if images == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(images) != 0 {
		t.Errorf("len(images) = %d, want 0", len(images))
	}
}

func TestMemoryImageRepo_ListAssignedTo_UnknownUser_ReturnsEmpty(t *testing.T) {
	repo := NewMemoryImageRepo(SeedImages(), SeedAssignments())

	images, err := repo.ListAssignedTo(context.Background(), "no-such-user")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(images) != 0 {
		t.Errorf("len(images) = %d, want 0", len(images))
	}
}
