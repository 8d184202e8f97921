package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/jk0601/agorder/internal/order/entity"
	"github.com/jk0601/agorder/internal/order/usecase"
	"github.com/jk0601/agorder/internal/pkg/pkgerror"
	"github.com/jk0601/agorder/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc     uc
	router *pkgrouter.Router
}

func (h *HTTPEndpoint) Upload(ctx context.Context, r *http.Request) (any, error) {
	part, cleanup, err := extractUploadPart(r)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	result, err := h.uc.Upload(ctx, part, part.FileName())
	if err != nil {
		return nil, err
	}

	return toUploadResponse(result), nil
}

func (h *HTTPEndpoint) SaveMapping(ctx context.Context, r *http.Request) (any, error) {
	var req SaveMappingRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	rules := make([]entity.FieldRule, 0, len(req.MappingRules))
	for _, rule := range req.MappingRules {
		rules = append(rules, entity.FieldRule{
			Source:    strings.TrimSpace(rule.Source),
			Target:    strings.TrimSpace(rule.Target),
			Transform: entity.ParseTransform(rule.Transform),
			Required:  rule.Required,
		})
	}

	result, err := h.uc.SaveMapping(ctx, usecase.SaveMappingInput{
		Name:         req.MappingName,
		SourceFields: req.SourceFields,
		TargetFields: req.TargetFields,
		Rules:        rules,
	})
	if err != nil {
		return nil, err
	}

	return SaveMappingResponse{MappingID: result.MappingID}, nil
}

func (h *HTTPEndpoint) Generate(ctx context.Context, r *http.Request) (any, error) {
	var req GenerateRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, err
	}

	result, err := h.uc.Generate(ctx, usecase.GenerateInput{
		FileID:       req.FileID,
		MappingID:    req.MappingID,
		TemplateType: req.TemplateType,
	})
	if err != nil {
		return nil, err
	}

	return toGenerateResponse(result), nil
}

// Download streams a stored file as an attachment. It is a raw handler: the
// response body is the file itself, not a JSON envelope.
func (h *HTTPEndpoint) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filename := pkgrouter.GetParam(ctx, "filename")
	reader, size, err := h.uc.Fetch(ctx, filename)
	if err != nil {
		h.router.WriteError(ctx, w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentTypeFor(filename))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", size))

	// Headers are already out by the time a copy error could surface, so the
	// failure is only visible in the request log.
	_, _ = io.Copy(w, reader)
}

func contentTypeFor(filename string) string {
	switch strings.ToLower(filename[strings.LastIndex(filename, ".")+1:]) {
	case "csv":
		return "text/csv"
	case "xls":
		return "application/vnd.ms-excel"
	case "xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

func decodeJSON(r *http.Request, into any) error {
	if r.Body == nil {
		return pkgerror.NewInvalidFormat()
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := decoder.Decode(into); err != nil {
		return pkgerror.NewInvalidFormat()
	}

	return nil
}

// extractUploadPart finds the multipart part named "file". The part is
// streamed, not buffered: the gateway enforces the size ceiling while
// persisting it.
func extractUploadPart(r *http.Request) (*multipart.Part, func(), error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.EqualFold(mediaType, "multipart/form-data") {
		return nil, func() {}, pkgerror.NewInvalidFormat()
	}

	reader, err := r.MultipartReader()
	if err != nil {
		return nil, func() {}, pkgerror.NewInvalidFormat()
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, func() {}, pkgerror.NewInvalidInput(errors.New("file part is required"))
			}
			return nil, func() {}, pkgerror.NewInvalidFormat()
		}

		if part.FormName() == "file" {
			return part, func() { _ = part.Close() }, nil
		}
		_ = part.Close()
	}
}
