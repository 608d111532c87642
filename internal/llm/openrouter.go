package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenRouterProvider implements Provider against the OpenRouter API.
// OpenRouter exposes an OpenAI-compatible wire protocol, so the OpenAI
// SDK is reused with an overridden base URL.
type OpenRouterProvider struct {
	client  *openai.Client
	cfg     Config
	timeout time.Duration
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg Config) (*OpenRouterProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sdkCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		sdkCfg.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}

	return &OpenRouterProvider{
		client:  openai.NewClientWithConfig(sdkCfg),
		cfg:     cfg,
		timeout: timeout,
	}, nil
}

func (p *OpenRouterProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	profile := p.cfg.profileFor(req.Role)

	temperature := profile.Temperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.cfg.MaxTokens
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       profile.Model,
		Messages:    buildMessages(req),
		MaxTokens:   maxTokens,
		Temperature: float32(temperature),
	}

	// Temperature 0 must survive the SDK's omitempty; nudge it to the
	// smallest value the wire format keeps.
	if temperature == 0 {
		chatReq.Temperature = 1e-8
	}

	if req.Schema != nil {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapRequestError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ErrMalformedEnvelope{
			Err: fmt.Errorf("no completion choices for model %s", profile.Model),
		}
	}

	content := resp.Choices[0].Message.Content

	if req.Schema != nil {
		if err := validateContent(req.Schema, content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content: content,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:      resp.Model,
		StopReason: mapStopReason(resp.Choices[0].FinishReason),
	}, nil
}

func (p *OpenRouterProvider) ModelFor(role AgentRole) string {
	return p.cfg.profileFor(role).Model
}

func buildMessages(req Request) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	return messages
}

func mapStopReason(reason openai.FinishReason) string {
	if reason == openai.FinishReasonLength {
		return "max_tokens"
	}
	return "end"
}

// mapRequestError translates SDK errors into the client's taxonomy.
func mapRequestError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ErrTransport{Timeout: true, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &ErrRemoteStatus{Code: apiErr.HTTPStatusCode, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode > 0 {
		return &ErrRemoteStatus{Code: reqErr.HTTPStatusCode, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ErrTransport{Timeout: true, Err: err}
	}

	return &ErrTransport{Err: err}
}
