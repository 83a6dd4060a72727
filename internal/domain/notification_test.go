package domain

import (
	"testing"
	"time"
)

func TestNewPostNotification(t *testing.T) {
	p := &Post{
		ID:        "abc123",
		UserID:    "u1",
		Title:     "Hello",
		Body:      "ignored by the projection",
		CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	n := NewPostNotification(p)

	if n.ID != "abc123" {
		t.Errorf("ID = %q, want %q", n.ID, "abc123")
	}
	if n.Title != "Hello" {
		t.Errorf("Title = %q, want %q", n.Title, "Hello")
	}
	if n.CreatedAt != "2024-01-01 10:00:00" {
		t.Errorf("CreatedAt = %q, want %q", n.CreatedAt, "2024-01-01 10:00:00")
	}
	want := "[2024-01-01 10:00:00] New Post Received with title 'Hello'."
	if n.Message != want {
		t.Errorf("Message = %q, want %q", n.Message, want)
	}
}

func TestNewPostNotification_MessageDependsOnTitleAndTime(t *testing.T) {
	p := &Post{
		ID:        "x",
		Title:     "Second post",
		CreatedAt: time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	n := NewPostNotification(p)
	want := "[2025-12-31 23:59:59] New Post Received with title 'Second post'."
	if n.Message != want {
		t.Errorf("Message = %q, want %q", n.Message, want)
	}
}
