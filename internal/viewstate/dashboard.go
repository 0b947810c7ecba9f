package viewstate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/logging"
	"TRAVELSHARE_CLIENT/internal/models"
)

// Source fetches the data behind the dashboard
type Source interface {
	UserBundle(ctx context.Context, userID string) (owned, bookmarked []models.Experience, err error)
	UserTrips(ctx context.Context, userID string) ([]models.Trip, error)
}

// Principal identifies whose dashboard is shown
type Principal interface {
	IsAuthenticated() bool
	UserID() string
}

// Dashboard seeds a Controller from one combined fetch
type Dashboard struct {
	source    Source
	principal Principal
	view      *Controller
}

// NewDashboard creates a dashboard over view
func NewDashboard(source Source, principal Principal, view *Controller) *Dashboard {
	return &Dashboard{source: source, principal: principal, view: view}
}

// View returns the controller the dashboard seeds
func (d *Dashboard) View() *Controller { return d.view }

// Refresh fetches experiences, bookmarks and trips. Collections are only
// re-seeded when every fetch succeeded; otherwise all three stay as they were.
func (d *Dashboard) Refresh(ctx context.Context) error {
	if !d.principal.IsAuthenticated() {
		return apperrors.NewUnauthorizedError("You must be signed in to see your board.")
	}
	userID := d.principal.UserID()

	var (
		owned, bookmarked []models.Experience
		trips             []models.Trip
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		owned, bookmarked, err = d.source.UserBundle(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		trips, err = d.source.UserTrips(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		logging.FromContext(ctx).Error().Err(err).Str("user_id", userID).Msg("Error fetching experiences and trips")
		return fmt.Errorf("refresh dashboard: %w", err)
	}

	d.view.SeedAll(map[Kind][]Entry{
		KindExperiences: experienceEntries(owned),
		KindBookmarks:   experienceEntries(bookmarked),
		KindTrips:       tripEntries(trips),
	})
	return nil
}

func experienceEntries(exps []models.Experience) []Entry {
	out := make([]Entry, len(exps))
	for i, e := range exps {
		out[i] = Entry{ID: e.ID, Title: e.Title, Item: e}
	}
	return out
}

func tripEntries(trips []models.Trip) []Entry {
	out := make([]Entry, len(trips))
	for i, t := range trips {
		out[i] = Entry{ID: t.ID, Title: t.Title, Item: t}
	}
	return out
}
