package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// PlannerClientInterface is the text-completion surface the plan service
// talks to. One request, no retries; callers fall back to the static plan
// on any error.
type PlannerClientInterface interface {
	GeneratePlanText(ctx context.Context, goal, experience string) (string, error)
}

type OpenAIPlannerClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlannerClient(apiKey, model string) *OpenAIPlannerClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIPlannerClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIPlannerClient) GeneratePlanText(ctx context.Context, goal, experience string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful fitness coach.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPlanPrompt(goal, experience),
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no completion choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildPlanPrompt is shared by both providers so a provider switch doesn't
// change the plan brief.
func BuildPlanPrompt(goal, experience string) string {
	return fmt.Sprintf(
		"You are an AI personal trainer. Create a one-week workout plan for a %s user whose goal is %s. "+
			"List each day with exercises, sets, reps and rest intervals.",
		experience, goal)
}
