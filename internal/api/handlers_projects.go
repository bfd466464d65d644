package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/docmodel"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/store"
)

type createProjectBody struct {
	UserID       string          `json:"userId"`
	DocumentType string          `json:"documentType"`
	Title        string          `json:"title"`
	Content      json.RawMessage `json:"content"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	if s.projects == nil {
		jsonError(w, "project storage is not configured", http.StatusServiceUnavailable)
		return
	}

	var body createProjectBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		jsonError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	switch {
	case body.UserID == "":
		jsonError(w, "userId is required", http.StatusBadRequest)
		return
	case body.Title == "":
		jsonError(w, "title is required", http.StatusBadRequest)
		return
	case len(body.Content) == 0:
		jsonError(w, "content is required", http.StatusBadRequest)
		return
	}
	if _, ok := docmodel.ParseDocumentType(body.DocumentType); !ok {
		jsonError(w, "unknown document type: "+body.DocumentType, http.StatusBadRequest)
		return
	}

	project, err := s.projects.Create(r.Context(), body.UserID, body.DocumentType, body.Title, body.Content)
	if err != nil {
		s.log.Error("create project failed", "error", err)
		jsonError(w, "failed to save project", http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]any{"success": true, "project": project})
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	if s.projects == nil {
		jsonError(w, "project storage is not configured", http.StatusServiceUnavailable)
		return
	}

	userID := chi.URLParam(r, "userID")
	projects, err := s.projects.ListByUser(r.Context(), userID)
	if err != nil {
		s.log.Error("list projects failed", "userId", userID, "error", err)
		jsonError(w, "failed to list projects", http.StatusInternalServerError)
		return
	}
	if projects == nil {
		projects = []store.Project{}
	}
	jsonOK(w, map[string]any{"success": true, "projects": projects})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if s.projects == nil {
		jsonError(w, "project storage is not configured", http.StatusServiceUnavailable)
		return
	}

	id := chi.URLParam(r, "id")
	if err := s.projects.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, "project not found", http.StatusNotFound)
			return
		}
		s.log.Error("delete project failed", "id", id, "error", err)
		jsonError(w, "failed to delete project", http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]any{"success": true})
}
