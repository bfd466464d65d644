package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/genai"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/request"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/topics"
)

const chatMaxTokens = 1024

type chatBody struct {
	Message string `json:"message"`
}

// handleChat answers free-form questions about the platform. It shares the
// generation backend but none of the document pipeline.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body chatBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if body.Message == "" {
		jsonError(w, "message is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.GenerateTimeout)
	defer cancel()

	reply, err := s.generator.Generate(ctx, genai.Prompt{
		System:      request.ChatInstruction,
		User:        body.Message,
		MaxTokens:   chatMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		s.log.Error("chat generation failed", "error", err)
		writeDomainError(w, err)
		return
	}
	jsonOK(w, map[string]any{"success": true, "response": reply})
}

func (s *Server) handleRandomTopic(w http.ResponseWriter, r *http.Request) {
	suggestion := topics.Random()
	jsonOK(w, map[string]any{"success": true, "category": suggestion.Category, "topic": suggestion.Topic})
}

func (s *Server) handleLLMStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "llm stats unavailable for this provider", http.StatusServiceUnavailable)
		return
	}
	jsonOK(w, s.stats.Snapshot())
}
