package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/export"
	"github.com/go-chi/chi/v5"
)

// handleExport renders a canonical document (sent as the request body) into
// the requested format.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	formatParam := chi.URLParam(r, "format")
	format, ok := export.ParseFormat(formatParam)
	if !ok {
		writeDomainError(w, &export.UnsupportedFormatError{Format: formatParam})
		return
	}

	var doc docmodel.CanonicalDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		jsonError(w, "invalid document body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if doc.Title == "" {
		jsonError(w, "document title is required", http.StatusBadRequest)
		return
	}

	opts := export.Options{}
	if format == export.FormatPptx {
		opts.Images = s.slideImages(r, &doc)
	}

	artifact, err := export.Render(&doc, format, opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	if format == export.FormatDocx {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", exportFilename(doc.Title)+".docx"))
	}
	w.Write(artifact.Payload)
}

// slideImages fetches decorations for image slides. Search failures and
// empty results degrade to slides without images.
func (s *Server) slideImages(r *http.Request, doc *docmodel.CanonicalDocument) []export.ImageRef {
	if s.images == nil {
		return nil
	}
	wanted := 0
	for _, sec := range doc.Body {
		if sec.Kind == docmodel.SlideImage {
			wanted++
		}
	}
	if wanted == 0 {
		return nil
	}

	hits, err := s.images.Search(r.Context(), doc.Title, wanted)
	if err != nil {
		s.log.Warn("image decoration failed", "error", err)
		return nil
	}
	refs := make([]export.ImageRef, 0, len(hits))
	for _, h := range hits {
		refs = append(refs, export.ImageRef{URL: h.WebURL, Width: h.Width, Height: h.Height})
	}
	return refs
}

func exportFilename(title string) string {
	name := sanitizeFilename(title)
	name = strings.ReplaceAll(name, " ", "_")
	if len(name) > 80 {
		name = name[:80]
	}
	return name
}
