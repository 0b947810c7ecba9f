// Package experiences browses, shows and edits experiences.
package experiences

import (
	"errors"

	"TRAVELSHARE_CLIENT/internal/models"
)

// ErrNoChanges is returned when an edit leaves every field untouched
var ErrNoChanges = errors.New("No changes detected.")

// Edit carries the editable fields of an experience. A nil field was not
// sent and is left as it is.
type Edit struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	EventDate   *string `json:"eventDate,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// Diff builds the field-level patch from original to edited; the patch
// always carries "_id" when any field differs
func Diff(original models.Experience, edited Edit) (map[string]any, error) {
	patch := map[string]any{}
	changed := func(key string, next *string, current string) {
		if next != nil && *next != current {
			patch[key] = *next
		}
	}
	changed("title", edited.Title, original.Title)
	changed("description", edited.Description, original.Description)
	changed("eventDate", edited.EventDate, original.EventDate)
	changed("location", edited.Location, original.Location)
	if len(patch) == 0 {
		return nil, ErrNoChanges
	}
	patch["_id"] = original.ID
	return patch, nil
}

// Apply returns original with the patch fields written over it
func Apply(original models.Experience, patch map[string]any) models.Experience {
	out := original
	if v, ok := patch["title"].(string); ok {
		out.Title = v
	}
	if v, ok := patch["description"].(string); ok {
		out.Description = v
	}
	if v, ok := patch["eventDate"].(string); ok {
		out.EventDate = v
	}
	if v, ok := patch["location"].(string); ok {
		out.Location = v
	}
	return out
}
