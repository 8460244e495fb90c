package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewAndIsCode(t *testing.T) {
	err := New(CodeFileNotFound, "file not found")
	if !IsCode(err, CodeFileNotFound) {
		t.Error("IsCode failed on direct DomainError")
	}
	if IsCode(err, CodeValidation) {
		t.Error("IsCode matched the wrong code")
	}
	if IsCode(stderrors.New("plain"), CodeInternal) {
		t.Error("IsCode should not match foreign errors")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := Wrap(cause, CodeInternal, "read file")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost")
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("error text %q misses cause", err.Error())
	}
	if !strings.Contains(err.Error(), string(CodeInternal)) {
		t.Errorf("error text %q misses code", err.Error())
	}
}

func TestAddContext(t *testing.T) {
	err := New(CodeUnsupportedFile, "unsupported file type")
	err = AddContext(err, CtxPath, "a.css")
	err = AddContext(err, CtxExtension, ".css")

	ctx := ContextOf(err)
	if ctx[CtxPath] != "a.css" || ctx[CtxExtension] != ".css" {
		t.Errorf("context = %v", ctx)
	}
	if !IsCode(err, CodeUnsupportedFile) {
		t.Error("code lost after AddContext")
	}
}

func TestAddContextOnForeignError(t *testing.T) {
	err := AddContext(stderrors.New("plain"), CtxPath, "b.tsx")
	if CodeOf(err) != CodeInternal {
		t.Errorf("code = %s, want INTERNAL_ERROR", CodeOf(err))
	}
	if ContextOf(err)[CtxPath] != "b.tsx" {
		t.Errorf("context = %v", ContextOf(err))
	}
}

func TestCodeOfThroughWrapping(t *testing.T) {
	inner := New(CodeNoComponent, "no React component found in file")
	outer := fmt.Errorf("analyze: %w", inner)
	if CodeOf(outer) != CodeNoComponent {
		t.Errorf("code = %s", CodeOf(outer))
	}
}
