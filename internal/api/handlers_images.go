package api

import (
	"encoding/json"
	"net/http"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/images"
)

type imageSearchBody struct {
	Query string `json:"query"`
}

// handleImageSearch looks up stock photos for a topic. Image lookup is a
// cosmetic concern, so upstream failures degrade to an empty result set
// rather than failing the request.
func (s *Server) handleImageSearch(w http.ResponseWriter, r *http.Request) {
	var body imageSearchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if body.Query == "" {
		jsonError(w, "query is required", http.StatusBadRequest)
		return
	}

	found, err := s.images.Search(r.Context(), body.Query, 5)
	if err != nil {
		s.log.Warn("image search failed", "query", body.Query, "error", err)
		found = nil
	}
	if found == nil {
		found = []images.Image{}
	}
	jsonOK(w, map[string]any{"success": true, "images": found})
}

func (s *Server) handleRandomImage(w http.ResponseWriter, r *http.Request) {
	var body imageSearchBody
	if r.Body != nil {
		// The query is optional here; a missing or empty body falls back
		// to the client's default topic pool.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	img, err := s.images.Random(r.Context(), body.Query)
	if err != nil {
		s.log.Warn("random image lookup failed", "error", err)
	}
	if img == nil {
		jsonOK(w, map[string]any{"success": true, "image": nil})
		return
	}
	jsonOK(w, map[string]any{"success": true, "image": img})
}
