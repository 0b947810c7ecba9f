package recommend

import (
	"strings"

	"TRAVELSHARE_CLIENT/internal/apperrors"
	"TRAVELSHARE_CLIENT/internal/dto"
)

// InterestOptions are the interests offered as toggles
var InterestOptions = []string{"Food", "Drinks", "Attractions", "History", "Outdoor", "Shopping"}

// Preferences is the trip-preference form sent to the recommendation endpoint
type Preferences struct {
	Location    string   `json:"location"`
	TripDate    string   `json:"trip_date"`
	TravelGroup string   `json:"travel_group"`
	Interests   []string `json:"interests"`
}

// NewPreferences returns an empty form travelling alone
func NewPreferences() Preferences {
	return Preferences{TravelGroup: "self", Interests: []string{}}
}

// ToggleInterest adds or removes one interest
func (p *Preferences) ToggleInterest(interest string) {
	for i, v := range p.Interests {
		if v == interest {
			p.Interests = append(p.Interests[:i:i], p.Interests[i+1:]...)
			return
		}
	}
	p.Interests = append(p.Interests, interest)
}

// AddCustomInterests appends a comma separated list of free-text interests
func (p *Preferences) AddCustomInterests(input string) {
	if strings.TrimSpace(input) == "" {
		return
	}
	for _, part := range strings.Split(input, ",") {
		if part = strings.TrimSpace(part); part != "" {
			p.Interests = append(p.Interests, part)
		}
	}
}

// RemoveInterest drops every occurrence of interest
func (p *Preferences) RemoveInterest(interest string) {
	kept := p.Interests[:0:0]
	for _, v := range p.Interests {
		if v != interest {
			kept = append(kept, v)
		}
	}
	p.Interests = kept
}

// Validate reports whether the form is complete
func (p Preferences) Validate() error {
	if strings.TrimSpace(p.Location) == "" ||
		strings.TrimSpace(p.TripDate) == "" ||
		strings.TrimSpace(p.TravelGroup) == "" ||
		len(p.Interests) == 0 {
		return apperrors.NewValidationError("location, trip_date, travel_group and at least one interest are required")
	}
	return nil
}

func (p Preferences) request() dto.RecommendationRequest {
	return dto.RecommendationRequest{
		Location:    strings.TrimSpace(p.Location),
		TripDate:    strings.TrimSpace(p.TripDate),
		TravelGroup: strings.TrimSpace(p.TravelGroup),
		Interests:   append([]string{}, p.Interests...),
	}
}
