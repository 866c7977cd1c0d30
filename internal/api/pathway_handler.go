package api

import (
	"net/http"

	"github.com/phrazzld/skillpilot-api/internal/api/shared"
	"github.com/phrazzld/skillpilot-api/internal/generation"
	"github.com/phrazzld/skillpilot-api/internal/pathway"
	"github.com/phrazzld/skillpilot-api/internal/platform/logger"
)

// PathwayHandler serves rule-based and AI-generated learning pathways.
type PathwayHandler struct {
	recommender generation.Recommender
}

// NewPathwayHandler creates a new PathwayHandler.
func NewPathwayHandler(recommender generation.Recommender) *PathwayHandler {
	return &PathwayHandler{recommender: recommender}
}

// Catalog handles GET /api/pathways/catalog.
func (h *PathwayHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, CatalogResponse{
		Interests: pathway.Interests(),
		Levels:    pathway.Levels(),
	})
}

// Lookup handles GET /api/pathways?interest=&level=.
// Unknown combinations return an empty topic list.
func (h *PathwayHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	interest, level := query.Get("interest"), query.Get("level")
	if !pathway.HasInterest(interest) || !pathway.HasLevel(level) {
		logger.FromContext(r.Context()).DebugContext(r.Context(), "pathway selection not in catalog",
			"interest", interest,
			"level", level)
	}
	topics := pathway.Lookup(interest, level)
	shared.RespondWithJSON(w, r, http.StatusOK, PathwayResponse{Topics: topics})
}

// Generate handles POST /api/pathways/generate. Generation failures are
// reported in the response body with status 200.
func (h *PathwayHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	res := h.recommender.Recommend(r.Context(), req.APIKey, req.Interest, req.Level)
	shared.RespondWithJSON(w, r, http.StatusOK, NewPathwayResponse(res))
}
