package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/disparador-app/disparador_api/model"
)

func chatServer(t *testing.T, handler http.HandlerFunc) *BreakdownService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	clientConfig := openai.DefaultConfig("test-key")
	clientConfig.BaseURL = server.URL + "/v1"

	return &BreakdownService{
		client:    openai.NewClientWithConfig(clientConfig),
		chatModel: openai.GPT4oMini,
	}
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}

func TestGetTaskBreakdownSuccess(t *testing.T) {
	svc := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		body := `{"steps": [
			{"title": "Open the book", "description": "Just open it at page 1.", "icon": "menu_book"},
			{"title": "Read one line", "description": "A single sentence is enough.", "icon": "visibility"},
			{"title": "Underline a word", "description": "Grab a pen and mark anything.", "icon": "edit"}
		]}`
		_ = json.NewEncoder(w).Encode(chatResponse(body))
	})

	steps := svc.GetTaskBreakdown(context.Background(), "Study")
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for i, s := range steps {
		if s.ID != i+1 {
			t.Errorf("step %d has id %d", i, s.ID)
		}
	}
	if steps[0].Title != "Open the book" || steps[0].Icon != "menu_book" {
		t.Fatalf("unexpected first step: %+v", steps[0])
	}
}

func TestGetTaskBreakdownServerErrorFallsBack(t *testing.T) {
	svc := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	})

	steps := svc.GetTaskBreakdown(context.Background(), "Study")
	assertFallbackSteps(t, steps)
}

func TestGetTaskBreakdownBadJSONFallsBack(t *testing.T) {
	svc := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse("I cannot answer in JSON, sorry."))
	})

	steps := svc.GetTaskBreakdown(context.Background(), "Study")
	assertFallbackSteps(t, steps)
}

func TestGetTaskBreakdownWrongStepCountFallsBack(t *testing.T) {
	for _, body := range []string{
		`{"steps": []}`,
		`{"steps": [{"title": "Only one", "description": "Not enough.", "icon": "touch_app"}]}`,
	} {
		svc := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(chatResponse(body))
		})

		steps := svc.GetTaskBreakdown(context.Background(), "Study")
		assertFallbackSteps(t, steps)
	}
}

func TestGetTaskBreakdownNoClientFallsBack(t *testing.T) {
	svc := &BreakdownService{}

	steps := svc.GetTaskBreakdown(context.Background(), "Study")
	assertFallbackSteps(t, steps)
}

func assertFallbackSteps(t *testing.T, steps []model.TaskStep) {
	t.Helper()
	want := FallbackSteps()
	if len(steps) != len(want) {
		t.Fatalf("expected %d fallback steps, got %d", len(want), len(steps))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("fallback step %d = %+v, want %+v", i, steps[i], want[i])
		}
	}
}

func TestGetVictoryTitleSuccess(t *testing.T) {
	svc := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse(`"Sovereign of the Kitchen."`))
	})

	title := svc.GetVictoryTitle(context.Background(), "Wash the dishes")
	if title != "Sovereign of the Kitchen" {
		t.Fatalf("expected trimmed title, got %q", title)
	}
}

func TestGetVictoryTitleFailureFallsBack(t *testing.T) {
	svc := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	title := svc.GetVictoryTitle(context.Background(), "Wash the dishes")
	if title != FallbackVictoryTitle {
		t.Fatalf("expected fallback title, got %q", title)
	}
}

func TestGetVictoryTitleEmptyFallsBack(t *testing.T) {
	svc := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(chatResponse(`""`))
	})

	title := svc.GetVictoryTitle(context.Background(), "Wash the dishes")
	if title != FallbackVictoryTitle {
		t.Fatalf("expected fallback title for empty content, got %q", title)
	}
}
