package vibes

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"

	"github.com/barhop/barhop-api/internal/types"
)

const defaultTemperature = 0.7

// AIClient is the slice of the generative client this service needs.
type AIClient interface {
	GenerateCompletion(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// Service defines the business logic contract for vibe matching.
type Service interface {
	RecommendByVibe(ctx context.Context, venues []types.Bar) ([]types.VibeRecommendation, error)
}

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger   *slog.Logger
	aiClient AIClient
}

func NewServiceImpl(aiClient AIClient, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		aiClient: aiClient,
	}
}

// RecommendByVibe asks the model to pick at most one bar per vibe.
// Recommendations pointing outside the list are dropped, not errors.
func (s *ServiceImpl) RecommendByVibe(ctx context.Context, venues []types.Bar) ([]types.VibeRecommendation, error) {
	ctx, span := otel.Tracer("VibesService").Start(ctx, "RecommendByVibe")
	defer span.End()

	prompt := buildVibePrompt(venues)
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](defaultTemperature),
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	responseText, err := s.aiClient.GenerateCompletion(ctx, prompt, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate vibe recommendations: %w", err)
	}

	jsonStr := strings.TrimSpace(responseText)
	jsonStr = strings.TrimSuffix(jsonStr, "```")
	jsonStr = strings.TrimPrefix(jsonStr, "```json")
	jsonStr = strings.TrimPrefix(jsonStr, "```")
	var recData struct {
		Recommendations []struct {
			Vibe        string `json:"vibe"`
			BarIndex    int    `json:"barIndex"`
			Description string `json:"description"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(jsonStr)), &recData); err != nil {
		return nil, fmt.Errorf("failed to parse vibe recommendations JSON: %w", err)
	}

	recommendations := make([]types.VibeRecommendation, 0, len(recData.Recommendations))
	for _, rec := range recData.Recommendations {
		if rec.BarIndex < 0 || rec.BarIndex >= len(venues) {
			s.logger.WarnContext(ctx, "Dropping vibe recommendation with out-of-range index",
				slog.String("vibe", rec.Vibe), slog.Int("barIndex", rec.BarIndex))
			continue
		}
		recommendations = append(recommendations, types.VibeRecommendation{
			Vibe:  rec.Vibe,
			Emoji: EmojiFor(rec.Vibe),
			Bar: types.BarWithVibe{
				Bar:         venues[rec.BarIndex],
				Vibe:        rec.Vibe,
				Description: rec.Description,
			},
		})
	}

	span.SetAttributes(attribute.Int("vibes.recommendation_count", len(recommendations)))
	return recommendations, nil
}
