package genai

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAIClient implements TextGenerator on the official openai-go SDK
// (chat completions). It is the alternative provider to Gemini.
type OpenAIClient struct {
	model  string
	client openai.Client
}

func NewOpenAIClient(apiKey, model, baseURL string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if model == "" {
		return nil, errors.New("openai model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIClient{model: model, client: openai.NewClient(opts...)}, nil
}

// Model returns the configured model name.
func (c *OpenAIClient) Model() string { return c.model }

// Generate implements TextGenerator.
func (c *OpenAIClient) Generate(ctx context.Context, p Prompt) (string, error) {
	msgs := []openai.ChatCompletionMessageParamUnion{}
	if p.System != "" {
		msgs = append(msgs, openai.SystemMessage(p.System))
	}
	msgs = append(msgs, openai.UserMessage(p.User))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: msgs,
	}
	if p.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(p.MaxTokens))
	}
	if p.Temperature > 0 {
		params.Temperature = openai.Float(p.Temperature)
	}
	if p.WantJSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", &GenerationError{Message: err.Error(), Retryable: true}
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Message: "empty choices"}
	}
	return resp.Choices[0].Message.Content, nil
}
