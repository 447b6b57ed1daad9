package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// textGenerator produces free-form plan text from a prompt. The production
// implementation calls a chat-completion endpoint; tests substitute a stub.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// openAIGenerator generates day narratives through OpenAI chat completions.
type openAIGenerator struct {
	client openai.Client
}

func newOpenAIGenerator(apiKey string) *openAIGenerator {
	return &openAIGenerator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

// Generate sends the prompt as a single user message and returns the model's
// text verbatim.
func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", errors.New("chat completion returned no content")
	}
	return completion.Choices[0].Message.Content, nil
}
