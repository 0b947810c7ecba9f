package handlers

import (
	"net/http"
	"strings"

	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/models"
	"TRAVELSHARE_CLIENT/internal/session"
	"TRAVELSHARE_CLIENT/internal/trips"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// TripsHandler manages trip-related endpoints
type TripsHandler struct {
	svc *trips.Service
}

// NewTripsHandler creates a new TripsHandler
func NewTripsHandler(svc *trips.Service) *TripsHandler {
	return &TripsHandler{svc: svc}
}

// Trips dispatches by HTTP method for /api/trips
func (h *TripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/trips"), "/")
	switch {
	case r.Method == http.MethodPost && rest == "":
		h.CreateTrip(w, r)
	case r.Method == http.MethodGet && rest == "candidates":
		h.Candidates(w, r)
	case r.Method == http.MethodGet && rest != "":
		h.TripDetail(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateTrip handles POST /api/trips
// @Summary Create a new trip
// @Description Both dates or neither; the end may not precede the start.
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.TripCreateRequest true "Trip draft"
// @Success 201 {object} models.Trip
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/trips [post]
func (h *TripsHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.TripCreateRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	draft := trips.Draft{
		Title:     req.Title,
		Dates:     models.DateRange{Start: req.StartDate, End: req.EndDate},
		Completed: req.Completed,
	}
	for _, id := range req.Experiences {
		draft.ToggleExperience(id)
	}

	trip, err := h.svc.Create(r.Context(), s, draft)
	if err != nil {
		fail(w, s, session.NoticeTripFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, trip)
}

// TripDetail handles GET /api/trips/{trip_id}
// @Summary Trip detail
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} trips.Detail
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/trips/{trip_id} [get]
func (h *TripsHandler) TripDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/trips/"), "/")
	detail, err := h.svc.Get(r.Context(), s, id)
	if err != nil {
		fail(w, s, session.NoticeTripFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, detail)
}

// Candidates handles GET /api/trips/candidates
// @Summary Experiences to attach to a trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all | mine | bookmarked (default all)"
// @Success 200 {array} models.Experience
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/trips/candidates [get]
func (h *TripsHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	list, err := h.svc.Candidates(r.Context(), s, trips.Filter(r.URL.Query().Get("filter")))
	if err != nil {
		fail(w, s, session.NoticeTripFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, list)
}
