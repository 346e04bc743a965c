package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAuthError(t *testing.T) {
	tests := []struct {
		name    string
		err     *AuthError
		wantMsg string
	}{
		{
			name:    "with message",
			err:     NewAuthError("key rejected"),
			wantMsg: "authentication failed: key rejected",
		},
		{
			name:    "without message",
			err:     &AuthError{},
			wantMsg: "authentication failed: API key may be invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestAPIError(t *testing.T) {
	err := NewAPIError(429, "gemini-2.5-flash", "quota exceeded")

	want := "coach API error [429] (gemini-2.5-flash): quota exceeded"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noStatus := NewAPIError(0, "gemini-2.5-flash", "bad request")
	if got := noStatus.Error(); got != "coach API error (gemini-2.5-flash): bad request" {
		t.Errorf("Error() without status = %q", got)
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	err := NewNetworkError("request failed", inner)

	if !errors.Is(err, inner) {
		t.Error("NetworkError should unwrap to inner error")
	}
}

func TestIsAuthError(t *testing.T) {
	wrapped := fmt.Errorf("generate: %w", NewAuthError("expired"))

	if !IsAuthError(wrapped) {
		t.Error("IsAuthError should match wrapped AuthError")
	}
	if IsAuthError(NewNetworkError("down", nil)) {
		t.Error("IsAuthError should not match NetworkError")
	}
	if IsAuthError(nil) {
		t.Error("IsAuthError(nil) should be false")
	}
}

func TestIsNetworkError(t *testing.T) {
	wrapped := fmt.Errorf("generate: %w", NewNetworkError("timeout", nil))

	if !IsNetworkError(wrapped) {
		t.Error("IsNetworkError should match wrapped NetworkError")
	}
	if IsNetworkError(NewAuthError("")) {
		t.Error("IsNetworkError should not match AuthError")
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"api error", NewAPIError(503, "m", "unavailable"), 503},
		{"wrapped api error", fmt.Errorf("send: %w", NewAPIError(401, "m", "unauthorized")), 401},
		{"plain error", errors.New("boom"), 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetHTTPStatus(tt.err); got != tt.want {
				t.Errorf("GetHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
