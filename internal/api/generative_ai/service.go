package generativeAI

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"google.golang.org/genai"

	"github.com/barhop/barhop-api/app/observability/metrics"
)

const defaultModel = "gemini-2.0-flash"

// AIClient wraps the Gemini client for one-shot completion requests.
type AIClient struct {
	client *genai.Client
	model  string
}

func NewAIClient(ctx context.Context) (*AIClient, error) {
	apiKey := os.Getenv("GOOGLE_GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_GEMINI_API_KEY environment variable is not set")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &AIClient{
		client: client,
		model:  defaultModel,
	}, nil
}

// GenerateCompletion sends a single prompt and returns the first
// candidate's text.
func (ai *AIClient) GenerateCompletion(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	ctx, span := otel.Tracer("AIClient").Start(ctx, "GenerateCompletion")
	defer span.End()

	startTime := time.Now()
	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
	m := metrics.Get()
	m.LlmRequestsTotal.Add(ctx, 1)
	m.LlmRequestDurationSeconds.Record(ctx, time.Since(startTime).Seconds())
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	txt := result.Text()
	if txt == "" {
		return "", fmt.Errorf("no valid content from AI")
	}
	return txt, nil
}
