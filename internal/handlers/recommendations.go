package handlers

import (
	"net/http"

	"TRAVELSHARE_CLIENT/internal/dto"
	"TRAVELSHARE_CLIENT/internal/recommend"
	"TRAVELSHARE_CLIENT/internal/session"
	"TRAVELSHARE_CLIENT/internal/utils"
)

// RecommendationsHandler serves AI trip recommendations
type RecommendationsHandler struct {
	rec *recommend.Recommender
}

// NewRecommendationsHandler creates a new RecommendationsHandler
func NewRecommendationsHandler(rec *recommend.Recommender) *RecommendationsHandler {
	return &RecommendationsHandler{rec: rec}
}

// Recommend handles POST /api/recommendations
// @Summary Get recommendations
// @Description Sends the preference form and returns the structured answer. A malformed answer degrades to status "malformed" with nothing to show.
// @Tags recommendations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PreferencesRequest true "Trip preferences"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/recommendations [post]
func (h *RecommendationsHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s, ok := currentSession(w, r)
	if !ok {
		return
	}

	var req dto.PreferencesRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	prefs := recommend.NewPreferences()
	prefs.Location = req.Location
	prefs.TripDate = req.TripDate
	if req.TravelGroup != "" {
		prefs.TravelGroup = req.TravelGroup
	}
	for _, interest := range req.Interests {
		prefs.ToggleInterest(interest)
	}
	prefs.AddCustomInterests(req.CustomInterests)

	result, err := h.rec.Recommend(r.Context(), prefs)
	if err != nil {
		fail(w, s, session.NoticeRecommendationFailed, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, recommendationResponse(result))
}

// Parse handles POST /api/recommendations/parse
// @Summary Parse a raw answer
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.ParseRequest true "Raw answer text"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/recommendations/parse [post]
func (h *RecommendationsHandler) Parse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.ParseRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	result := recommend.Parse(req.Raw)
	recommend.LogResult(r.Context(), result)
	utils.WriteJSONResponse(w, http.StatusOK, recommendationResponse(result))
}

func recommendationResponse(result recommend.Result) dto.RecommendationResponse {
	resp := dto.RecommendationResponse{Status: string(result.Status)}
	if result.Model != nil {
		resp.Model = result.Model
	}
	if result.Err != nil {
		resp.Error = result.Err.Error()
	}
	return resp
}
