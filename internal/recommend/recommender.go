package recommend

import (
	"context"
	"fmt"

	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/logging"
)

// Source produces raw recommendation text
type Source interface {
	Recommendations(ctx context.Context, req dto.RecommendationRequest) (string, error)
}

// Recommender asks the AI endpoint and structures the answer
type Recommender struct {
	source Source
}

// NewRecommender creates a Recommender
func NewRecommender(source Source) *Recommender {
	return &Recommender{source: source}
}

// Recommend validates prefs, fetches raw text and parses it. A malformed
// answer is logged and returned as StatusMalformed, not as an error.
func (r *Recommender) Recommend(ctx context.Context, prefs Preferences) (Result, error) {
	if err := prefs.Validate(); err != nil {
		return Result{}, err
	}

	raw, err := r.source.Recommendations(ctx, prefs.request())
	if err != nil {
		return Result{}, fmt.Errorf("fetch recommendations: %w", err)
	}

	result := Parse(raw)
	LogResult(ctx, result)
	return result, nil
}

// LogResult records parse outcomes that leave nothing to show
func LogResult(ctx context.Context, result Result) {
	logger := logging.FromContext(ctx)
	switch result.Status {
	case StatusMalformed:
		logger.Error().Err(result.Err).Msg("Error parsing recommendations JSON")
	case StatusEmpty:
		logger.Info().Msg("recommendation response carried no json block")
	}
}
