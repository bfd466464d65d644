package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultGeminiBase = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini REST API for text generation and vision OCR.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client

	Stats *Stats
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBase,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		Stats: NewStats(time.Hour),
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *GeminiClient) WithBaseURL(u string) *GeminiClient {
	c.baseURL = u
	return c
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string { return c.model }

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate implements TextGenerator.
func (c *GeminiClient) Generate(ctx context.Context, p Prompt) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: p.User}}},
		},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     p.Temperature,
			MaxOutputTokens: p.MaxTokens,
		},
	}
	if p.System != "" {
		req.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: p.System}}}
	}
	if p.WantJSON {
		req.GenerationConfig.ResponseMimeType = "application/json"
	}

	start := time.Now()
	text, err := c.call(ctx, req)
	if err == nil && c.Stats != nil {
		c.Stats.Record(time.Since(start).Milliseconds())
	}
	return text, err
}

// Transcribe implements Transcriber using the vision path: the image is sent
// as inline data with a fixed transcription instruction.
func (c *GeminiClient) Transcribe(ctx context.Context, image []byte, mimeType string) (string, error) {
	req := geminiRequest{
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{InlineData: &geminiInlineData{
						MimeType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(image),
					}},
					{Text: "Extract and transcribe all text from this image. Provide only the extracted text without any additional commentary."},
				},
			},
		},
	}
	return c.call(ctx, req)
}

func (c *GeminiClient) call(ctx context.Context, req geminiRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &GenerationError{Message: err.Error(), Retryable: true}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", &GenerationError{StatusCode: resp.StatusCode, Message: string(respBody), Retryable: true}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &GenerationError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Error != nil {
		return "", &GenerationError{StatusCode: apiResp.Error.Code, Message: apiResp.Error.Message}
	}
	if len(apiResp.Candidates) == 0 || len(apiResp.Candidates[0].Content.Parts) == 0 {
		return "", &GenerationError{StatusCode: resp.StatusCode, Message: "empty response from model"}
	}

	var sb bytes.Buffer
	for _, part := range apiResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}

// Close releases idle connections.
func (c *GeminiClient) Close() {
	c.httpClient.CloseIdleConnections()
}
