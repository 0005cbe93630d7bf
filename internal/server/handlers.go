package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/output"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/parser"
)

// uploadField is the multipart form field carrying the source file.
const uploadField = "file"

type conversionResponse struct {
	Entry      models.HistoryEntry   `json:"entry"`
	Conversion output.ConversionView `json:"conversion"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "OK",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(s.startTime).String(),
		"conversions": s.store.Len(),
	})
}

func (s *Server) handleListConversions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) handleCreateConversion(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.cfg.Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds %d bytes", maxBytes))
			return
		}
		writeError(w, http.StatusBadRequest, "expected multipart form upload")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("missing %q file field", uploadField))
		return
	}
	defer file.Close()

	opts := s.conversionOptions()
	format, ok := parser.ParseFormat(r.URL.Query().Get("format"))
	if !ok {
		writeError(w, http.StatusBadRequest, "format must be csv, xlsx or xls")
		return
	}
	opts.Format = format

	conv, err := tripsheet.ConvertReader(r.Context(), file, header.Filename, opts)
	if err != nil {
		s.logger.Warn("conversion failed",
			zap.String("file", header.Filename),
			zap.Error(err),
		)
		switch {
		case errors.Is(err, tripsheet.ErrParseTimeout):
			writeError(w, http.StatusGatewayTimeout, "processing timed out")
		case errors.Is(err, tripsheet.ErrInvalidFormat):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "conversion failed")
		}
		return
	}

	entry := s.store.Add(conv)
	s.logger.Info("conversion stored",
		zap.String("id", entry.ID),
		zap.String("file", entry.Name),
		zap.Int("records", entry.Records),
	)
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleGetConversion(w http.ResponseWriter, r *http.Request) {
	entry, conv, ok := s.store.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "conversion not found")
		return
	}
	writeJSON(w, http.StatusOK, conversionResponse{
		Entry:      entry,
		Conversion: output.View(conv),
	})
}

func (s *Server) handleDeleteConversion(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(mux.Vars(r)["id"]) {
		writeError(w, http.StatusNotFound, "conversion not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	entry, conv, ok := s.store.Get(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "conversion not found")
		return
	}

	var buf bytes.Buffer
	if err := output.WriteXLSX(&buf, conv.Matrix, conv.SheetName); err != nil {
		s.logger.Error("export failed", zap.String("id", entry.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", output.ContentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", output.DefaultFileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
