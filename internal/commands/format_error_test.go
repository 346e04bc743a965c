package commands

import (
	"errors"
	"strings"
	"testing"

	apierrors "github.com/rodrigo/fitdeck/internal/errors"
)

func TestFormatErrorMessage_Nil(t *testing.T) {
	if got := formatErrorMessage(nil, "ctx"); got != "" {
		t.Fatalf("expected empty for nil error, got %s", got)
	}
}

func TestFormatErrorMessage_APIError(t *testing.T) {
	e := apierrors.NewAPIError(500, "gemini-2.5-flash", "server exploded")
	out := formatErrorMessage(e, "Coaching failed")
	if out == "" {
		t.Fatalf("expected non-empty message")
	}
	if !strings.Contains(out, "HTTP Status: 500") {
		t.Fatalf("expected HTTP status in message, got: %s", out)
	}
}

func TestFormatErrorMessage_AuthHint(t *testing.T) {
	auth := apierrors.NewAuthError("invalid key")
	out := formatErrorMessage(auth, "Coaching failed")
	if !strings.Contains(out, "Hint") {
		t.Fatalf("expected hint for auth error, got: %s", out)
	}
	if !strings.Contains(out, "GEMINI_API_KEY") {
		t.Fatalf("expected the credential variable in the hint, got: %s", out)
	}
}

func TestFormatErrorMessage_NetworkHint(t *testing.T) {
	netErr := apierrors.NewNetworkError("fetch", errors.New("connection refused"))
	out := formatErrorMessage(netErr, "Coaching failed")
	if !strings.Contains(out, "Hint") {
		t.Fatalf("expected hint for network error, got: %s", out)
	}
	if !strings.Contains(out, "internet connection") {
		t.Fatalf("expected connectivity hint, got: %s", out)
	}
}

func TestEnsureReply(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"normal reply", "Squats 4x8", false},
		{"empty", "", true},
		{"whitespace only", " \n\t ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ensureReply(tt.text)
			if tt.wantErr {
				if !errors.Is(err, apierrors.ErrEmptyResponse) {
					t.Errorf("error = %v, want ErrEmptyResponse", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
