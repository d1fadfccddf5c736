package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	appContext "github.com/alphabatem/common/context"
	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"github.com/disparador-app/disparador_api/model"
)

// BreakdownService calls a generative-AI endpoint to split a task into three
// ridiculously small micro-steps and to coin a victory title. Failures never
// propagate: a single attempt is made and any error substitutes a fixed,
// plausible fallback, so the experience never blocks on AI availability.
type BreakdownService struct {
	appContext.DefaultService

	client    *openai.Client
	chatModel string
}

const BREAKDOWN_SVC = "breakdown_svc"

// FallbackVictoryTitle is returned whenever the title call fails or yields
// nothing usable.
const FallbackVictoryTitle = "Inertia Defeated"

func (svc BreakdownService) Id() string {
	return BREAKDOWN_SVC
}

func (svc *BreakdownService) Configure(ctx *appContext.Context) error {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" {
		clientConfig := openai.DefaultConfig(apiKey)
		if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
			clientConfig.BaseURL = baseURL
		}
		svc.client = openai.NewClientWithConfig(clientConfig)
	} else {
		log.Warn("OPENAI_API_KEY not set, task breakdown will serve fallback steps")
	}

	svc.chatModel = os.Getenv("OPENAI_MODEL")
	if svc.chatModel == "" {
		svc.chatModel = openai.GPT4oMini
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *BreakdownService) Start() error {
	return nil
}

// FallbackSteps is the deterministic 3-step substitute used when generation
// fails.
func FallbackSteps() []model.TaskStep {
	return []model.TaskStep{
		{ID: 1, Title: "Breathe and focus", Description: "Just sit down and take a deep breath for 5 seconds.", Icon: "self_improvement"},
		{ID: 2, Title: "Prepare the tool", Description: "Open the app, the site, or grab the object you need.", Icon: "handyman"},
		{ID: 3, Title: "The first touch", Description: "Do the simplest possible action right now.", Icon: "touch_app"},
	}
}

// GetTaskBreakdown returns exactly three ordered micro-steps for the task, ids
// assigned 1-based by this consumer. It never fails.
func (svc *BreakdownService) GetTaskBreakdown(ctx context.Context, task string) []model.TaskStep {
	steps, err := svc.generateSteps(ctx, task)
	if err != nil {
		log.WithFields(log.Fields{"task": task, "error": err.Error()}).
			Warn("Task breakdown generation failed, serving fallback steps")
		recordAIFallback("breakdown")
		return FallbackSteps()
	}
	return steps
}

func (svc *BreakdownService) generateSteps(ctx context.Context, task string) ([]model.TaskStep, error) {
	if svc.client == nil {
		return nil, errors.New("ai client not configured")
	}

	prompt := fmt.Sprintf(`The user is avoiding the task: %q.
Generate 3 ridiculously simple micro-steps.
Golden rule: each step must be doable in under 30 seconds.
Example: if the task is "Study", step 1 is "Just open the book at page 1", not "Read a chapter".
Focus on the initial physical action.
Pick fitting icons from the Material Symbols library (e.g. 'touch_app', 'visibility', 'edit', 'pan_tool').
Respond with a JSON object of the form {"steps": [{"title": "...", "description": "...", "icon": "..."}]}.
Titles are imperative ("Open the site"); descriptions are one short sentence.`, task)

	resp, err := svc.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: svc.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("breakdown completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("breakdown completion returned no choices")
	}

	var parsed struct {
		Steps []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"steps"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("breakdown response is not valid JSON: %w", err)
	}
	if len(parsed.Steps) != 3 {
		return nil, fmt.Errorf("breakdown response contained %d steps, want 3", len(parsed.Steps))
	}

	steps := make([]model.TaskStep, len(parsed.Steps))
	for i, s := range parsed.Steps {
		steps[i] = model.TaskStep{
			ID:          i + 1,
			Title:       s.Title,
			Description: s.Description,
			Icon:        s.Icon,
		}
	}
	return steps, nil
}

// GetVictoryTitle returns a short heroic title for a beaten task. It never
// fails.
func (svc *BreakdownService) GetVictoryTitle(ctx context.Context, task string) string {
	title, err := svc.generateTitle(ctx, task)
	if err != nil {
		log.WithFields(log.Fields{"task": task, "error": err.Error()}).
			Warn("Victory title generation failed, serving fallback title")
		recordAIFallback("victory_title")
		return FallbackVictoryTitle
	}
	return title
}

func (svc *BreakdownService) generateTitle(ctx context.Context, task string) (string, error) {
	if svc.client == nil {
		return "", errors.New("ai client not configured")
	}

	prompt := fmt.Sprintf(`The user just beat procrastination on: %q.
Coin a short, heroic achievement title (3 words maximum).
The title MUST relate directly to the task above.
Be creative, funny, or epic.
Example: "Wash the dishes" -> "Sovereign of the Kitchen".
Example: "Answer emails" -> "Master of Replies".
Return ONLY the text, no quotes, no trailing period.`, task)

	resp, err := svc.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: svc.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("title completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("title completion returned no choices")
	}

	title := strings.TrimSpace(resp.Choices[0].Message.Content)
	title = strings.Trim(title, `"'.`)
	if title == "" {
		return "", errors.New("title completion returned empty text")
	}
	return title, nil
}
