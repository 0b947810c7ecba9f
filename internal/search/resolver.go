// Package search implements the dual-mode incremental search box: title
// suggestions grouped by location, and deduplicated location suggestions.
package search

import (
	"context"
	"fmt"
	"sync"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/gateway"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/models"
)

// Mode selects what the search box matches on
type Mode string

const (
	ModeTitle    Mode = "title"
	ModeLocation Mode = "location"
)

// UnknownLocation heads the group of title results that carry no location
const UnknownLocation = "Unknown Location"

// ParseMode validates a mode coming from the browser
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTitle, ModeLocation:
		return Mode(s), nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown search mode %q", s))
	}
}

func (m Mode) searchType() gateway.SearchType {
	if m == ModeLocation {
		return gateway.SearchByLocation
	}
	return gateway.SearchByTitle
}

// Searcher is the slice of the gateway the resolver needs
type Searcher interface {
	Search(ctx context.Context, searchType gateway.SearchType, input string) ([]models.Experience, error)
}

// Group is a heading in the title suggestion list
type Group struct {
	Location    string              `json:"location"`
	Experiences []models.Experience `json:"experiences"`
}

// Outcome is what the search box should render after a keystroke
type Outcome struct {
	Mode      Mode                `json:"mode"`
	Query     string              `json:"query"`
	Titles    []models.Experience `json:"titles,omitempty"`
	Groups    []Group             `json:"groups,omitempty"`
	Locations []string            `json:"locations,omitempty"`
	// Stale is set when a newer request for the same mode superseded this one
	Stale bool `json:"stale"`
}

// Resolver holds the result lists of both search modes for one session
type Resolver struct {
	gw Searcher

	mu        sync.Mutex
	active    Mode
	issued    map[Mode]uint64
	visible   map[Mode]bool
	titles    []models.Experience
	locations []string
}

// NewResolver creates a resolver in title mode
func NewResolver(gw Searcher) *Resolver {
	return &Resolver{
		gw:      gw,
		active:  ModeTitle,
		issued:  map[Mode]uint64{},
		visible: map[Mode]bool{},
	}
}

// Search runs one keystroke-triggered query. Only the active mode can be
// queried; any other mode is a validation error and no request is made.
// An empty query clears the mode's list without calling the gateway. On
// failure the previous list is returned unchanged together with the error.
func (r *Resolver) Search(ctx context.Context, mode Mode, query string) (Outcome, error) {
	r.mu.Lock()
	if mode != r.active {
		active := r.active
		r.mu.Unlock()
		return Outcome{Mode: mode, Query: query}, apperrors.NewValidationError(
			fmt.Sprintf("search mode %q is not active, switch to it first (active: %q)", mode, active))
	}
	r.issued[mode]++
	seq := r.issued[mode]
	if query == "" {
		r.clear(mode)
		out := r.outcomeLocked(mode, query)
		r.mu.Unlock()
		return out, nil
	}
	r.mu.Unlock()

	results, err := r.gw.Search(ctx, mode.searchType(), query)

	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.issued[mode] {
		logging.FromContext(ctx).Debug().
			Str("mode", string(mode)).
			Str("query", query).
			Uint64("seq", seq).
			Msg("discarding stale search response")
		out := r.outcomeLocked(mode, query)
		out.Stale = true
		return out, nil
	}

	if err != nil {
		return r.outcomeLocked(mode, query), fmt.Errorf("search %s %q: %w", mode, query, err)
	}

	switch mode {
	case ModeLocation:
		r.locations = DedupeLocations(results)
	default:
		r.titles = results
	}
	// A late answer for a mode the user switched away from must not show up
	r.visible[mode] = mode == r.active
	return r.outcomeLocked(mode, query), nil
}

// SwitchMode hides both result lists. Requests already in flight are not cancelled.
func (r *Resolver) SwitchMode(mode Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = mode
	r.visible[ModeTitle] = false
	r.visible[ModeLocation] = false
}

// Active returns the current mode
func (r *Resolver) Active() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Current returns what the active mode displays right now
func (r *Resolver) Current() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcomeLocked(r.active, "")
}

// ResolveTitle returns the id of the first displayed title result whose
// title matches exactly
func (r *Resolver) ResolveTitle(title string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.visible[ModeTitle] {
		return "", false
	}
	for _, exp := range r.titles {
		if exp.Title == title {
			return exp.ID, true
		}
	}
	return "", false
}

// ResolveLocation returns the location string if it is among the displayed options
func (r *Resolver) ResolveLocation(location string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.visible[ModeLocation] {
		return "", false
	}
	for _, loc := range r.locations {
		if loc == location {
			return loc, true
		}
	}
	return "", false
}

// Browse lists the experiences of one location bucket without touching the box state
func (r *Resolver) Browse(ctx context.Context, location string) ([]models.Experience, error) {
	if location == "" {
		return []models.Experience{}, nil
	}
	return r.gw.Search(ctx, gateway.SearchByLocation, location)
}

func (r *Resolver) clear(mode Mode) {
	switch mode {
	case ModeLocation:
		r.locations = nil
	default:
		r.titles = nil
	}
	r.visible[mode] = false
}

func (r *Resolver) outcomeLocked(mode Mode, query string) Outcome {
	out := Outcome{Mode: mode, Query: query}
	if !r.visible[mode] {
		return out
	}
	switch mode {
	case ModeLocation:
		out.Locations = append([]string(nil), r.locations...)
	default:
		out.Titles = append([]models.Experience(nil), r.titles...)
		out.Groups = GroupByLocation(r.titles)
	}
	return out
}

// DedupeLocations reduces results to distinct location strings in first-seen order
func DedupeLocations(results []models.Experience) []string {
	seen := make(map[string]struct{}, len(results))
	locations := make([]string, 0, len(results))
	for _, exp := range results {
		if exp.Location == "" {
			continue
		}
		if _, ok := seen[exp.Location]; ok {
			continue
		}
		seen[exp.Location] = struct{}{}
		locations = append(locations, exp.Location)
	}
	return locations
}

// GroupByLocation groups title results under their location, in first-seen order
func GroupByLocation(results []models.Experience) []Group {
	var groups []Group
	index := map[string]int{}
	for _, exp := range results {
		heading := exp.Location
		if heading == "" {
			heading = UnknownLocation
		}
		i, ok := index[heading]
		if !ok {
			i = len(groups)
			index[heading] = i
			groups = append(groups, Group{Location: heading})
		}
		groups[i].Experiences = append(groups[i].Experiences, exp)
	}
	return groups
}
