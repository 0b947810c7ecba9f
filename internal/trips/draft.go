// Package trips assembles new trips and loads existing ones.
package trips

import (
	"strings"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/models"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// Draft is a trip being assembled before submission
type Draft struct {
	Title       string           `json:"title"`
	Experiences []string         `json:"experiences"`
	Dates       models.DateRange `json:"event_date"`
	Completed   bool             `json:"completed"`
}

// ToggleExperience attaches id if absent, detaches it otherwise
func (d *Draft) ToggleExperience(id string) {
	for i, v := range d.Experiences {
		if v == id {
			d.Experiences = append(d.Experiences[:i:i], d.Experiences[i+1:]...)
			return
		}
	}
	d.Experiences = append(d.Experiences, id)
}

// Validate checks the draft can be submitted
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return apperrors.NewValidationError("title is required")
	}
	if d.Dates.IsPartial() {
		return apperrors.NewValidationError("Please select both start and end dates for the event.")
	}
	if d.Dates.IsZero() {
		return nil
	}
	start, err := utils.ParseDate(d.Dates.Start)
	if err != nil {
		return apperrors.NewValidationError("start date must be YYYY-MM-DD or RFC3339")
	}
	end, err := utils.ParseDate(d.Dates.End)
	if err != nil {
		return apperrors.NewValidationError("end date must be YYYY-MM-DD or RFC3339")
	}
	if end.Before(start) {
		return apperrors.NewValidationError("end date cannot be before start date")
	}
	return nil
}

// Trip builds the payload submitted for userID on day today
func (d Draft) Trip(userID, today string) models.Trip {
	experiences := d.Experiences
	if experiences == nil {
		experiences = []string{}
	}
	return models.Trip{
		Title:        strings.TrimSpace(d.Title),
		User:         []string{userID},
		Experiences:  append([]string{}, experiences...),
		EventDate:    d.Dates,
		CreationDate: today,
		Completed:    d.Completed,
	}
}
