package inbound

import (
	"net/http"

	"github.com/jk0601/agorder/internal/order/entity"
	"github.com/jk0601/agorder/internal/order/usecase"
)

type SaveMappingRequest struct {
	MappingName  string        `json:"mappingName"`
	SourceFields []string      `json:"sourceFields"`
	TargetFields []string      `json:"targetFields"`
	MappingRules []MappingRule `json:"mappingRules"`
}

type MappingRule struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Transform string `json:"transform,omitempty"`
	Required  bool   `json:"required,omitempty"`
}

type GenerateRequest struct {
	FileID       string `json:"fileId"`
	MappingID    string `json:"mappingId"`
	TemplateType string `json:"templateType,omitempty"`
}

type Validation struct {
	IsValid  bool     `json:"isValid"`
	Problems []string `json:"problems,omitempty"`
}

type UploadResponse struct {
	FileName   string              `json:"fileName"`
	FileID     string              `json:"fileId"`
	Headers    []string            `json:"headers"`
	Rows       []map[string]string `json:"rows"`
	TotalRows  int                 `json:"totalRows"`
	Validation Validation          `json:"validation"`
}

func (UploadResponse) StatusCode() int {
	return http.StatusCreated
}

func (r UploadResponse) Message() string {
	if !r.Validation.IsValid {
		return "file uploaded, but some expected columns are missing"
	}
	return "file uploaded"
}

type SaveMappingResponse struct {
	MappingID string `json:"mappingId"`
}

func (SaveMappingResponse) Message() string {
	return "mapping saved"
}

type GenerateResponse struct {
	FileName      string            `json:"fileName"`
	DownloadURL   string            `json:"downloadUrl"`
	ProcessedRows int               `json:"processedRows"`
	Errors        []entity.RowError `json:"errors"`
}

func (GenerateResponse) Message() string {
	return "file generated"
}

func toUploadResponse(result usecase.UploadResult) UploadResponse {
	return UploadResponse{
		FileName:  result.File.OriginalName,
		FileID:    result.File.ID,
		Headers:   result.Preview.Headers,
		Rows:      result.Preview.Rows,
		TotalRows: result.Preview.TotalRows,
		Validation: Validation{
			IsValid:  result.Validation.Valid,
			Problems: result.Validation.Problems,
		},
	}
}

func toGenerateResponse(result usecase.GenerateResult) GenerateResponse {
	errs := result.RowErrors
	if errs == nil {
		errs = []entity.RowError{}
	}

	return GenerateResponse{
		FileName:      result.FileName,
		DownloadURL:   result.DownloadURL,
		ProcessedRows: result.ProcessedRows,
		Errors:        errs,
	}
}
