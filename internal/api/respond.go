package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/export"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/extract"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/genai"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/normalize"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/request"
	"github.com/HorizonHnk/Academic-Document-Generator/internal/store"
)

func jsonOK(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeDomainError maps the error taxonomy onto HTTP status codes.
// Caller-fixable input problems are 4xx; upstream AI failures are 502 so
// clients can distinguish "fix your request" from "try again later".
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		invalidReq    *request.InvalidRequestError
		malformed     *normalize.MalformedResponseError
		genFailed     *genai.GenerationError
		unsupType     *extract.UnsupportedTypeError
		extractFailed *extract.ExtractionError
		unsupFormat   *export.UnsupportedFormatError
	)
	switch {
	case errors.As(err, &invalidReq):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &unsupType):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &unsupFormat):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &extractFailed):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &malformed):
		jsonError(w, err.Error(), http.StatusBadGateway)
	case errors.As(err, &genFailed):
		jsonError(w, err.Error(), http.StatusBadGateway)
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	default:
		jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
