package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusBadGateway},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	t.Parallel()

	meta := MetadataFor(Code("NO_SUCH_CODE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown code should map to 500, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := stdErrors.New("connection refused")
	err := Wrap(CodeDependency, cause, "redis unavailable")

	if !stdErrors.Is(err, cause) {
		t.Fatal("wrapped cause must survive errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
	if err.Error() != "DEPENDENCY_ERROR: redis unavailable" {
		t.Fatalf("unexpected rendering %q", err.Error())
	}
}

func TestAsUnwrapsThroughFmtErrorf(t *testing.T) {
	t.Parallel()

	inner := New(CodeNotFound, "book template not found")
	wrapped := fmt.Errorf("handling request: %w", inner)

	typed := As(wrapped)
	if typed == nil || typed.Code() != CodeNotFound {
		t.Fatalf("expected typed error through the chain, got %v", typed)
	}

	if As(stdErrors.New("plain")) != nil {
		t.Fatal("plain errors must not convert")
	}
	if As(nil) != nil {
		t.Fatal("nil must not convert")
	}
}

func TestWithDetails(t *testing.T) {
	t.Parallel()

	err := New(CodeValidation, "personalization validation failed").
		WithDetails(map[string]any{"violations": []string{"EMPTY_NAME"}})

	details, ok := err.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details, got %T", err.Details())
	}
	if _, ok := details["violations"]; !ok {
		t.Fatalf("details dropped: %+v", details)
	}
}
