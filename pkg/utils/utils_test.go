package utils

import (
	"strings"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	h := HashPassword("secret")
	if h == "" || h == "secret" {
		t.Fatal("hash must be non-empty and not the plaintext")
	}
	if !CheckPassword("secret", h) {
		t.Error("correct password should verify")
	}
	if CheckPassword("wrong", h) {
		t.Error("wrong password must not verify")
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if len(a) != 32 {
		t.Errorf("len = %d, want 32", len(a))
	}
	if strings.Contains(a, "-") {
		t.Error("id must not contain hyphens")
	}
	if a == b {
		t.Error("ids must be unique")
	}
}
