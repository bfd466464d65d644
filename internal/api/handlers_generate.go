package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/genai"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/normalize"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/request"
	"github.com/go-chi/chi/v5"
)

// generateBody is the request body for POST /api/generate/{documentType}.
type generateBody struct {
	Topic         string                `json:"topic"`
	Tone          request.Tone          `json:"tone"`
	CitationStyle request.CitationStyle `json:"citationStyle"`
	LengthHint    string                `json:"lengthHint"`
	IncludeImages bool                  `json:"includeImages"`
	Authors       []request.Author      `json:"authors"`
	ExtraContext  string                `json:"extraContext"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	docType, ok := docmodel.ParseDocumentType(chi.URLParam(r, "documentType"))
	if !ok {
		jsonError(w, "unknown document type: "+chi.URLParam(r, "documentType"), http.StatusBadRequest)
		return
	}

	var body generateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	req := request.GenerationRequest{
		DocumentType:  docType,
		Topic:         body.Topic,
		Tone:          body.Tone,
		CitationStyle: body.CitationStyle,
		LengthHint:    body.LengthHint,
		IncludeImages: body.IncludeImages,
		Authors:       body.Authors,
		ExtraContext:  body.ExtraContext,
	}
	applyDefaults(&req)

	prompt, err := request.Build(req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.GenerateTimeout)
	defer cancel()

	raw, err := s.generator.Generate(ctx, genai.Prompt{
		System:      prompt.System,
		User:        prompt.User,
		MaxTokens:   prompt.MaxTokens,
		WantJSON:    prompt.WantJSON,
		Temperature: 0.7,
	})
	if err != nil {
		s.log.Error("generation failed", "type", docType, "error", err)
		writeDomainError(w, err)
		return
	}

	doc, err := normalize.Normalize(raw, docType, req.Topic)
	if err != nil {
		s.log.Error("normalization failed", "type", docType, "error", err)
		writeDomainError(w, err)
		return
	}

	jsonOK(w, map[string]any{
		"success": true,
		"content": doc,
	})
}

// applyDefaults fills per-type defaults when the body omits options.
func applyDefaults(req *request.GenerationRequest) {
	if req.Tone == "" {
		switch req.DocumentType {
		case docmodel.TypePowerPoint:
			req.Tone = request.ToneProfessional
		default:
			req.Tone = request.ToneAcademic
		}
	}
	if req.CitationStyle == "" {
		switch req.DocumentType {
		case docmodel.TypeConference:
			req.CitationStyle = request.CitationIEEE
		case docmodel.TypeThesis:
			req.CitationStyle = request.CitationHarvard
		default:
			req.CitationStyle = request.CitationAuto
		}
	}
}
