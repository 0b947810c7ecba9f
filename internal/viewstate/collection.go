// Package viewstate keeps the sort and layout state of the dashboard sections.
package viewstate

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"TRAVELSHARE_CLIENT/internal/apperrors"
)

// Kind names one of the dashboard collections
type Kind string

const (
	KindExperiences Kind = "experiences"
	KindTrips       Kind = "trips"
	KindBookmarks   Kind = "bookmarks"
)

// Kinds lists the collections in dashboard order
var Kinds = []Kind{KindExperiences, KindTrips, KindBookmarks}

// ParseKind validates a collection name
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", apperrors.NewValidationError(fmt.Sprintf("unknown collection %q", s))
}

// DisplayMode is the layout hint for a collection
type DisplayMode string

const (
	DisplayGrid DisplayMode = "grid"
	DisplayList DisplayMode = "list"
)

// SortMode is the ordering applied to a collection
type SortMode string

const (
	SortDefault      SortMode = "default"
	SortAlphabetical SortMode = "alphabetical"
)

// Control is one of the three radio buttons of a collection
type Control string

const (
	ControlDefault Control = "default"
	ControlAZ      Control = "az"
	ControlList    Control = "list"
)

// ParseControl validates a control name
func ParseControl(s string) (Control, error) {
	switch Control(s) {
	case ControlDefault, ControlAZ, ControlList:
		return Control(s), nil
	default:
		return "", apperrors.NewValidationError(fmt.Sprintf("unknown control %q", s))
	}
}

// Entry is one rendered element of a collection
type Entry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Item  any    `json:"item,omitempty"`
}

// State is a read-only snapshot of a collection
type State struct {
	Kind        Kind        `json:"kind"`
	Selected    Control     `json:"selected"`
	DisplayMode DisplayMode `json:"display_mode"`
	SortMode    SortMode    `json:"sort_mode"`
	Entries     []Entry     `json:"entries"`
}

// IDs returns the entry ids in display order
func (s State) IDs() []string {
	ids := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		ids[i] = e.ID
	}
	return ids
}

// collection is not safe for concurrent use; Controller serialises access
type collection struct {
	kind     Kind
	selected Control
	display  DisplayMode
	sortMode SortMode
	// live is in display order
	live []Entry
	// original is in fetch order and is only replaced by seed
	original []Entry
}

func newCollection(kind Kind) *collection {
	return &collection{
		kind:     kind,
		selected: ControlDefault,
		display:  DisplayGrid,
		sortMode: SortDefault,
		live:     []Entry{},
		original: []Entry{},
	}
}

func (c *collection) seed(entries []Entry) {
	c.original = append([]Entry{}, entries...)
	c.live = reversed(c.original)
	if c.sortMode == SortAlphabetical {
		sortByTitle(c.live)
	}
}

func (c *collection) selectControl(ctl Control) {
	c.selected = ctl
	switch ctl {
	case ControlDefault:
		c.display = DisplayGrid
		c.sortMode = SortDefault
		c.live = reversed(c.original)
	case ControlAZ:
		c.display = DisplayGrid
		c.sortMode = SortAlphabetical
		sortByTitle(c.live)
	case ControlList:
		c.display = DisplayList
	}
}

func (c *collection) snapshot() State {
	return State{
		Kind:        c.kind,
		Selected:    c.selected,
		DisplayMode: c.display,
		SortMode:    c.sortMode,
		Entries:     append([]Entry{}, c.live...),
	}
}

// reversed returns a newest-first copy of a fetch-ordered slice
func reversed(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}

func sortByTitle(entries []Entry) {
	col := collate.New(language.English)
	sort.SliceStable(entries, func(i, j int) bool {
		return col.CompareString(entries[i].Title, entries[j].Title) < 0
	})
}
