package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/dto"
)

type fakeSource struct {
	raw   string
	err   error
	calls []dto.RecommendationRequest
}

func (f *fakeSource) Recommendations(ctx context.Context, req dto.RecommendationRequest) (string, error) {
	f.calls = append(f.calls, req)
	return f.raw, f.err
}

func completePrefs() Preferences {
	p := NewPreferences()
	p.Location = " Lisbon "
	p.TripDate = "2025-06-01"
	p.ToggleInterest("Food")
	return p
}

func TestRecommend_ParsesAnswer(t *testing.T) {
	source := &fakeSource{raw: welcome}
	r := NewRecommender(source)

	result, err := r.Recommend(context.Background(), completePrefs())
	require.NoError(t, err)
	assert.Equal(t, StatusOK, result.Status)
	require.Len(t, source.calls, 1)
	assert.Equal(t, "Lisbon", source.calls[0].Location)
	assert.Equal(t, "self", source.calls[0].TravelGroup)
}

func TestRecommend_MalformedIsNotAnError(t *testing.T) {
	r := NewRecommender(&fakeSource{raw: "```json {oops ```"})

	result, err := r.Recommend(context.Background(), completePrefs())
	require.NoError(t, err)
	assert.Equal(t, StatusMalformed, result.Status)
}

func TestRecommend_IncompleteFormMakesNoCall(t *testing.T) {
	source := &fakeSource{raw: welcome}
	r := NewRecommender(source)

	_, err := r.Recommend(context.Background(), NewPreferences())
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	assert.Empty(t, source.calls)
}

func TestRecommend_GatewayFailure(t *testing.T) {
	r := NewRecommender(&fakeSource{err: errors.New("dial tcp: refused")})

	_, err := r.Recommend(context.Background(), completePrefs())
	assert.ErrorContains(t, err, "fetch recommendations")
}
