package search

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/gateway"
	"TRAVELSHARE_CLIENT/internal/models"
)

type call struct {
	searchType gateway.SearchType
	input      string
}

type fakeSearcher struct {
	mu      sync.Mutex
	calls   []call
	results map[string][]models.Experience
	err     error
	// gates lets a test hold a response until it releases it
	gates map[string]chan struct{}
}

func (f *fakeSearcher) Search(ctx context.Context, searchType gateway.SearchType, input string) ([]models.Experience, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{searchType, input})
	gate := f.gates[input]
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.results[input], nil
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestSearch_TitleGroupsByLocation(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.Experience{
		"Paris": {
			{ID: "1", Title: "Paris Walk", Location: "Paris"},
			{ID: "2", Title: "Paris Eats", Location: "Paris"},
		},
	}}
	r := NewResolver(fake)

	out, err := r.Search(context.Background(), ModeTitle, "Paris")
	require.NoError(t, err)

	require.Len(t, out.Groups, 1)
	assert.Equal(t, "Paris", out.Groups[0].Location)
	assert.Len(t, out.Groups[0].Experiences, 2)
	assert.Equal(t, gateway.SearchByTitle, fake.calls[0].searchType)
}

func TestSearch_UnknownLocationFallback(t *testing.T) {
	groups := GroupByLocation([]models.Experience{
		{Title: "Hidden Bar"},
		{Title: "Louvre", Location: "Paris"},
		{Title: "Secret Beach"},
	})

	require.Len(t, groups, 2)
	assert.Equal(t, UnknownLocation, groups[0].Location)
	assert.Len(t, groups[0].Experiences, 2)
	assert.Equal(t, "Paris", groups[1].Location)
}

func TestSearch_EmptyQueryMakesNoCall(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.Experience{"a": {{ID: "1", Title: "A"}}}}
	r := NewResolver(fake)

	_, err := r.Search(context.Background(), ModeTitle, "a")
	require.NoError(t, err)

	out, err := r.Search(context.Background(), ModeTitle, "")
	require.NoError(t, err)
	assert.Empty(t, out.Titles)
	assert.Equal(t, 1, fake.callCount())
}

func TestDedupeLocations_FirstSeenOrder(t *testing.T) {
	locations := DedupeLocations([]models.Experience{
		{Location: "Rome"},
		{Location: "Paris"},
		{Location: "Rome"},
		{Location: "Oslo"},
		{Location: "Paris"},
	})

	assert.Equal(t, []string{"Rome", "Paris", "Oslo"}, locations)
}

func TestSearch_LocationModeDedupes(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.Experience{
		"o": {{Location: "Oslo"}, {Location: "Porto"}, {Location: "Oslo"}},
	}}
	r := NewResolver(fake)
	r.SwitchMode(ModeLocation)

	out, err := r.Search(context.Background(), ModeLocation, "o")
	require.NoError(t, err)
	assert.Equal(t, []string{"Oslo", "Porto"}, out.Locations)
	assert.Equal(t, gateway.SearchByLocation, fake.calls[0].searchType)

	loc, ok := r.ResolveLocation("Porto")
	assert.True(t, ok)
	assert.Equal(t, "Porto", loc)
	_, ok = r.ResolveLocation("Lisbon")
	assert.False(t, ok)
}

func TestSearch_FailureKeepsPreviousResults(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.Experience{"pa": {{ID: "1", Title: "Paris Walk", Location: "Paris"}}}}
	r := NewResolver(fake)

	_, err := r.Search(context.Background(), ModeTitle, "pa")
	require.NoError(t, err)

	fake.err = errors.New("connection reset")
	out, err := r.Search(context.Background(), ModeTitle, "par")
	assert.Error(t, err)
	require.Len(t, out.Titles, 1)
	assert.Equal(t, "Paris Walk", out.Titles[0].Title)
}

func TestResolveTitle_FirstExactMatch(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.Experience{
		"cafe": {
			{ID: "1", Title: "Cafe Luna"},
			{ID: "2", Title: "Cafe"},
			{ID: "3", Title: "Cafe"},
		},
	}}
	r := NewResolver(fake)
	_, err := r.Search(context.Background(), ModeTitle, "cafe")
	require.NoError(t, err)

	id, ok := r.ResolveTitle("Cafe")
	assert.True(t, ok)
	assert.Equal(t, "2", id)

	_, ok = r.ResolveTitle("cafe")
	assert.False(t, ok)
}

func TestSwitchMode_HidesBothLists(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.Experience{"p": {{ID: "1", Title: "P", Location: "Paris"}}}}
	r := NewResolver(fake)
	_, err := r.Search(context.Background(), ModeTitle, "p")
	require.NoError(t, err)
	assert.NotEmpty(t, r.Current().Titles)

	r.SwitchMode(ModeLocation)
	assert.Equal(t, ModeLocation, r.Active())
	assert.Empty(t, r.Current().Locations)

	r.SwitchMode(ModeTitle)
	assert.Empty(t, r.Current().Titles)
}

func TestSearch_StaleResponseIsDiscarded(t *testing.T) {
	slow := make(chan struct{})
	fake := &fakeSearcher{
		results: map[string][]models.Experience{
			"p":  {{ID: "old", Title: "Old"}},
			"pa": {{ID: "new", Title: "New"}},
		},
		gates: map[string]chan struct{}{"p": slow},
	}
	r := NewResolver(fake)

	done := make(chan Outcome)
	go func() {
		out, _ := r.Search(context.Background(), ModeTitle, "p")
		done <- out
	}()

	// wait until the first request is in flight
	require.Eventually(t, func() bool { return fake.callCount() == 1 }, timeout, tick)

	fresh, err := r.Search(context.Background(), ModeTitle, "pa")
	require.NoError(t, err)
	assert.Equal(t, "new", fresh.Titles[0].ID)

	close(slow)
	late := <-done
	assert.True(t, late.Stale)

	id, ok := r.ResolveTitle("New")
	assert.True(t, ok)
	assert.Equal(t, "new", id)
	_, ok = r.ResolveTitle("Old")
	assert.False(t, ok)
}

func TestSearch_InactiveModeIsRejected(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.Experience{"p": {{ID: "1", Title: "P", Location: "Paris"}}}}
	r := NewResolver(fake)

	out, err := r.Search(context.Background(), ModeLocation, "p")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	assert.Empty(t, out.Locations)
	assert.Zero(t, fake.callCount())

	_, ok := r.ResolveLocation("Paris")
	assert.False(t, ok)
}

func TestResolve_OnlyDisplayedLists(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.Experience{"p": {{ID: "1", Title: "P", Location: "Paris"}}}}
	r := NewResolver(fake)

	_, err := r.Search(context.Background(), ModeTitle, "p")
	require.NoError(t, err)
	id, ok := r.ResolveTitle("P")
	require.True(t, ok)
	assert.Equal(t, "1", id)

	r.SwitchMode(ModeLocation)
	_, ok = r.ResolveTitle("P")
	assert.False(t, ok)

	_, err = r.Search(context.Background(), ModeLocation, "p")
	require.NoError(t, err)
	loc, ok := r.ResolveLocation("Paris")
	require.True(t, ok)
	assert.Equal(t, "Paris", loc)

	r.SwitchMode(ModeTitle)
	_, ok = r.ResolveLocation("Paris")
	assert.False(t, ok)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("location")
	require.NoError(t, err)
	assert.Equal(t, ModeLocation, m)

	_, err = ParseMode("Location")
	assert.Error(t, err)
}

func TestBrowse(t *testing.T) {
	fake := &fakeSearcher{results: map[string][]models.Experience{"Paris": {{ID: "1"}, {ID: "2"}}}}
	r := NewResolver(fake)

	exps, err := r.Browse(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Len(t, exps, 2)
	assert.Empty(t, r.Current().Titles)
}
