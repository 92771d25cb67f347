package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("UNAUTHORIZED", "Missing Authorization header", http.StatusUnauthorized)
	if simple.Error() != "UNAUTHORIZED: Missing Authorization header" || simple.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
	if simple.Unwrap() != nil {
		t.Fatalf("expected no cause")
	}
}
