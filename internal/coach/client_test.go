package coach

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"

	apierrors "github.com/rodrigo/fitdeck/internal/errors"
)

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), "")
	if !errors.Is(err, apierrors.ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestOptions(t *testing.T) {
	c := &GeminiClient{modelName: DefaultModel, temperature: DefaultTemperature}

	WithModel("gemini-2.5-pro")(c)
	if c.modelName != "gemini-2.5-pro" {
		t.Errorf("modelName = %q", c.modelName)
	}

	// Empty model name keeps the default
	WithModel("")(c)
	if c.modelName != "gemini-2.5-pro" {
		t.Errorf("empty WithModel should be a no-op, got %q", c.modelName)
	}

	WithTemperature(0.2)(c)
	if c.temperature != 0.2 {
		t.Errorf("temperature = %v", c.temperature)
	}
}

func TestClassify(t *testing.T) {
	c := &GeminiClient{modelName: DefaultModel}

	tests := []struct {
		name    string
		err     error
		isAuth  bool
		isNet   bool
		status  int
	}{
		{
			name:   "unauthorized",
			err:    &googleapi.Error{Code: 401, Message: "invalid key"},
			isAuth: true,
		},
		{
			name:   "forbidden",
			err:    &googleapi.Error{Code: 403, Message: "blocked"},
			isAuth: true,
		},
		{
			name:   "rate limited",
			err:    &googleapi.Error{Code: 429, Message: "quota"},
			status: 429,
		},
		{
			name:  "plain transport error",
			err:   fmt.Errorf("dial tcp: connection refused"),
			isNet: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.classify(tt.err)
			if apierrors.IsAuthError(got) != tt.isAuth {
				t.Errorf("IsAuthError = %v, want %v", apierrors.IsAuthError(got), tt.isAuth)
			}
			if apierrors.IsNetworkError(got) != tt.isNet {
				t.Errorf("IsNetworkError = %v, want %v", apierrors.IsNetworkError(got), tt.isNet)
			}
			if tt.status != 0 && apierrors.GetHTTPStatus(got) != tt.status {
				t.Errorf("status = %d, want %d", apierrors.GetHTTPStatus(got), tt.status)
			}
		})
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{
			name: "single candidate",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []genai.Part{genai.Text("Squats 4x8")}}},
				},
			},
			want: "Squats 4x8",
		},
		{
			name: "multiple parts concatenated",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []genai.Part{genai.Text("Squats "), genai.Text("4x8")}}},
				},
			},
			want: "Squats 4x8",
		},
		{
			name: "nil content skipped",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{Content: nil}},
			},
			want: "",
		},
		{
			name: "no candidates",
			resp: &genai.GenerateContentResponse{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractText(tt.resp); got != tt.want {
				t.Errorf("extractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMockClientRecordsCalls(t *testing.T) {
	mock := &MockClient{GenerateVal: "rest day today"}

	got, err := mock.Generate(context.Background(), "should I train?")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "rest day today" {
		t.Errorf("Generate = %q", got)
	}
	if mock.GenerateCalled != 1 {
		t.Errorf("GenerateCalled = %d", mock.GenerateCalled)
	}
	if mock.LastPrompt != "should I train?" {
		t.Errorf("LastPrompt = %q", mock.LastPrompt)
	}

	if mock.ModelName() != DefaultModel {
		t.Errorf("ModelName = %q", mock.ModelName())
	}

	if err := mock.Close(); err != nil || !mock.CloseCalled {
		t.Error("Close should succeed and be recorded")
	}
}

func TestMockClientFunc(t *testing.T) {
	mock := &MockClient{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("service down")
		},
	}

	_, err := mock.Generate(context.Background(), "hi")
	if err == nil {
		t.Error("expected error from GenerateFunc")
	}
}
