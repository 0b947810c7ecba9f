package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entries(pairs ...string) []Entry {
	out := make([]Entry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Entry{ID: pairs[i], Title: pairs[i+1]})
	}
	return out
}

func TestSeed_DefaultIsNewestFirst(t *testing.T) {
	c := NewController()
	c.Seed(KindExperiences, entries("1", "Zoo", "2", "Aquarium", "3", "Museum"))

	s := c.Snapshot(KindExperiences)
	assert.Equal(t, []string{"3", "2", "1"}, s.IDs())
	assert.Equal(t, SortDefault, s.SortMode)
	assert.Equal(t, DisplayGrid, s.DisplayMode)
	assert.Equal(t, ControlDefault, s.Selected)
}

func TestSelectAlphabetical_ThenDefaultRestores(t *testing.T) {
	c := NewController()
	c.Seed(KindTrips, entries("1", "Zoo", "2", "Aquarium", "3", "Museum", "4", "Beach"))
	before := c.Snapshot(KindTrips).IDs()

	sorted := c.SelectAlphabetical(KindTrips)
	assert.Equal(t, []string{"2", "4", "3", "1"}, sorted.IDs())
	assert.Equal(t, SortAlphabetical, sorted.SortMode)

	restored := c.SelectDefault(KindTrips)
	assert.Equal(t, before, restored.IDs())
	// not a re-reverse of the sorted order
	assert.NotEqual(t, []string{"1", "3", "4", "2"}, restored.IDs())
}

func TestSelectListView_KeepsOrder(t *testing.T) {
	c := NewController()
	c.Seed(KindBookmarks, entries("1", "b", "2", "a"))
	sorted := c.SelectAlphabetical(KindBookmarks)

	list := c.SelectListView(KindBookmarks)
	assert.Equal(t, DisplayList, list.DisplayMode)
	assert.Equal(t, ControlList, list.Selected)
	assert.Equal(t, sorted.IDs(), list.IDs())
	assert.Equal(t, SortAlphabetical, list.SortMode)

	back := c.SelectAlphabetical(KindBookmarks)
	assert.Equal(t, DisplayGrid, back.DisplayMode)
}

func TestCollections_AreIndependent(t *testing.T) {
	c := NewController()
	c.SeedAll(map[Kind][]Entry{
		KindExperiences: entries("e1", "b", "e2", "a"),
		KindTrips:       entries("t1", "b", "t2", "a"),
	})

	c.SelectAlphabetical(KindExperiences)
	c.SelectListView(KindTrips)

	assert.Equal(t, []string{"e2", "e1"}, c.Snapshot(KindExperiences).IDs())
	trips := c.Snapshot(KindTrips)
	assert.Equal(t, []string{"t2", "t1"}, trips.IDs())
	assert.Equal(t, SortDefault, trips.SortMode)
	assert.Equal(t, DisplayList, trips.DisplayMode)
	assert.Equal(t, DisplayGrid, c.Snapshot(KindBookmarks).DisplayMode)
}

func TestSortByTitle_LocaleOrder(t *testing.T) {
	c := NewController()
	c.Seed(KindExperiences, entries("1", "zebra", "2", "Éclair", "3", "apple", "4", "Banana"))

	s := c.SelectAlphabetical(KindExperiences)
	var titles []string
	for _, e := range s.Entries {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"apple", "Banana", "Éclair", "zebra"}, titles)
}

func TestSortByTitle_Stable(t *testing.T) {
	c := NewController()
	c.Seed(KindExperiences, entries("1", "Same", "2", "Same", "3", "Same"))

	assert.Equal(t, []string{"3", "2", "1"}, c.SelectAlphabetical(KindExperiences).IDs())
}

func TestReseed_KeepsAlphabeticalSelection(t *testing.T) {
	c := NewController()
	c.Seed(KindExperiences, entries("1", "b", "2", "a"))
	c.SelectAlphabetical(KindExperiences)

	c.Seed(KindExperiences, entries("1", "b", "2", "a", "3", "c"))
	assert.Equal(t, []string{"2", "1", "3"}, c.Snapshot(KindExperiences).IDs())

	assert.Equal(t, []string{"3", "2", "1"}, c.SelectDefault(KindExperiences).IDs())
}

func TestSnapshot_IsACopy(t *testing.T) {
	c := NewController()
	c.Seed(KindExperiences, entries("1", "a"))

	s := c.Snapshot(KindExperiences)
	s.Entries[0].ID = "mutated"
	assert.Equal(t, "1", c.Snapshot(KindExperiences).Entries[0].ID)
}

func TestParse(t *testing.T) {
	k, err := ParseKind("bookmarks")
	require.NoError(t, err)
	assert.Equal(t, KindBookmarks, k)
	_, err = ParseKind("photos")
	assert.Error(t, err)

	ctl, err := ParseControl("az")
	require.NoError(t, err)
	assert.Equal(t, ControlAZ, ctl)
	_, err = ParseControl("za")
	assert.Error(t, err)

	assert.Len(t, NewController().Snapshots(), 3)
}
