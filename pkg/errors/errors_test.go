package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDimensions, "label %gx%g: dimensions must be positive", 0.0, 1.0)
	if err.Code != ErrCodeInvalidDimensions {
		t.Errorf("Code = %q", err.Code)
	}
	if !strings.Contains(err.Error(), "INVALID_DIMENSIONS") {
		t.Errorf("Error() = %q, want the code prefix", err.Error())
	}
	if !strings.Contains(err.Error(), "0x1") {
		t.Errorf("Error() = %q, want the formatted message", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeStorage, cause, "write artifact")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost from the chain")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q, want the cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidTemplate, "unknown template")
	if !Is(err, ErrCodeInvalidTemplate) {
		t.Error("Is() should match the code")
	}
	if Is(err, ErrCodeStorage) {
		t.Error("Is() matched the wrong code")
	}
	if Is(stderrors.New("plain"), ErrCodeStorage) {
		t.Error("Is() matched a plain error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeRenderFont, "load font")
	outer := fmt.Errorf("render batch: %w", inner)
	if !Is(outer, ErrCodeRenderFont) {
		t.Error("Is() should see through fmt.Errorf wrapping")
	}
	if GetCode(outer) != ErrCodeRenderFont {
		t.Errorf("GetCode() = %q", GetCode(outer))
	}
}

func TestGetCodePlainError(t *testing.T) {
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "request needs dimensions")
	if got := UserMessage(err); got != "request needs dimensions" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := stderrors.New("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
