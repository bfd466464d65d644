package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/HorizonHnk/Academic-Document-Generator/internal/extract"
)

// handleProcessFile extracts text from a single uploaded file.
func (s *Server) handleProcessFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, mimeType, err := s.readUpload(file, header)
	if err != nil {
		jsonError(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}

	res, err := s.extractor.Extract(r.Context(), data, mimeType)
	if err != nil {
		s.log.Warn("file processing failed", "filename", sanitizeFilename(header.Filename), "mime", mimeType, "error", err)
		writeDomainError(w, err)
		return
	}

	jsonOK(w, map[string]any{
		"success": true,
		"text":    res.Text,
		"type":    res.Kind,
	})
}

// handleBatchFiles extracts text from several files, reporting per-file
// results so one corrupt file never hides another's text.
func (s *Server) handleBatchFiles(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	// Unreadable uploads are reported per file, like extraction failures,
	// without dropping the rest of the batch.
	inputs := make([]extract.FileInput, 0, len(headers))
	readErrs := make(map[int]string)
	for i, fh := range headers {
		name := sanitizeFilename(fh.Filename)
		f, err := fh.Open()
		if err != nil {
			inputs = append(inputs, extract.FileInput{Name: name})
			readErrs[i] = "failed to open file"
			continue
		}
		data, mimeType, err := s.readUpload(f, fh)
		f.Close()
		if err != nil {
			inputs = append(inputs, extract.FileInput{Name: name})
			readErrs[i] = err.Error()
			continue
		}
		inputs = append(inputs, extract.FileInput{Name: name, MimeType: mimeType, Data: data})
	}

	results := s.extractor.Batch(r.Context(), inputs)
	for i, msg := range readErrs {
		results[i] = extract.FileResult{Name: inputs[i].Name, Error: msg}
	}

	jsonOK(w, map[string]any{
		"success": true,
		"results": results,
		"text":    extract.JoinText(results),
	})
}

func (s *Server) readUpload(file multipart.File, header *multipart.FileHeader) ([]byte, string, error) {
	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file")
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, "", fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return data, mimeType, nil
}
