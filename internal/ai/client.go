package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// Generator turns a rendered prompt into advice text.
type Generator interface {
	Enabled() bool
	Generate(ctx context.Context, req Request) (string, error)
	// Stream behaves like Generate but reports each text chunk as it arrives.
	// The full text is returned once the backend finishes.
	Stream(ctx context.Context, req Request, onChunk func(string) error) (string, error)
}

// Config holds Gemini configuration parameters.
type Config struct {
	APIKey   string
	Endpoint string
}

var (
	// ErrDisabled means no backend credential is configured.
	ErrDisabled = errors.New("ai generator disabled")
	// ErrEmptyResponse means the backend answered without any text.
	ErrEmptyResponse = errors.New("gemini returned no text")
)

// Client implements Generator against the Gemini API. A single Client is
// built at startup and shared by every request.
type Client struct {
	genai *genai.Client
}

// NewClient constructs a Client if the supplied configuration is valid.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return nil, ErrDisabled
	}
	opts := []option.ClientOption{option.WithAPIKey(key)}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{genai: client}, nil
}

// Enabled reports whether the client can make outbound calls.
func (c *Client) Enabled() bool {
	return c != nil && c.genai != nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.genai.Close()
}

// Generate performs a single non-streaming call.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}
	resp, err := c.model(req).GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Stream performs a streaming call, forwarding each chunk to onChunk. An
// error from onChunk aborts the stream.
func (c *Client) Stream(ctx context.Context, req Request, onChunk func(string) error) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}
	iter := c.model(req).GenerateContentStream(ctx, genai.Text(req.Prompt))
	full := &strings.Builder{}
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return full.String(), fmt.Errorf("gemini stream: %w", err)
		}
		chunk := responseText(resp)
		if chunk == "" {
			continue
		}
		full.WriteString(chunk)
		if onChunk != nil {
			if err := onChunk(chunk); err != nil {
				return full.String(), fmt.Errorf("forward chunk: %w", err)
			}
		}
	}
	if strings.TrimSpace(full.String()) == "" {
		return "", ErrEmptyResponse
	}
	return full.String(), nil
}

func (c *Client) model(req Request) *genai.GenerativeModel {
	model := c.genai.GenerativeModel(req.Model)
	if instruction := strings.TrimSpace(req.SystemInstruction); instruction != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(instruction)}}
	}
	return model
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	builder := &strings.Builder{}
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	return builder.String()
}
