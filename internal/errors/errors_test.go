package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessageFallbacks(t *testing.T) {
	base := errors.New("connection refused")

	if got := New(CodeTransportFailed, "request failed", base).Error(); got != "request failed" {
		t.Fatalf("expected message to win, got %q", got)
	}
	if got := New(CodeTransportFailed, "", base).Error(); got != "connection refused" {
		t.Fatalf("expected wrapped error text, got %q", got)
	}
	if got := New(CodeDuplicateOrganization, "", nil).Error(); got != string(CodeDuplicateOrganization) {
		t.Fatalf("expected code as text, got %q", got)
	}
}

func TestCodeOfWalksChain(t *testing.T) {
	base := errors.New("boom")
	structured := New(CodeReachedMaxOrganization, "limit", base)
	wrapped := fmt.Errorf("create organization: %w", structured)

	if CodeOf(wrapped) != CodeReachedMaxOrganization {
		t.Fatalf("expected %s, got %s", CodeReachedMaxOrganization, CodeOf(wrapped))
	}
	if !IsCode(wrapped, CodeReachedMaxOrganization) {
		t.Fatal("IsCode should match through fmt.Errorf wrapping")
	}
	if !errors.Is(wrapped, base) {
		t.Fatal("Unwrap should expose the underlying error")
	}
	if CodeOf(base) != CodeUnknown {
		t.Fatalf("plain errors should report %s", CodeUnknown)
	}
}
