package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jk0601/agorder/internal/order/convert"
	"github.com/jk0601/agorder/internal/order/entity"
	"github.com/jk0601/agorder/internal/order/tabular"
	"github.com/jk0601/agorder/internal/pkg/pkgerror"
	"github.com/jk0601/agorder/internal/pkg/pkguid"
)

// Store persists and retrieves mapping definitions keyed by name.
type Store interface {
	Save(ctx context.Context, def entity.MappingDefinition) error
	Load(ctx context.Context, name string) (entity.MappingDefinition, error)
}

// Gateway is the upload/download boundary owning the file storage area.
type Gateway interface {
	Store(ctx context.Context, content io.Reader, originalName string) (entity.UploadedFile, error)
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
	Resolve(name string) (string, error)
}

type Clock interface {
	Now() time.Time
}

// Options carries the configuration the pipeline needs at runtime.
type Options struct {
	// ExpectedFields are the column name patterns an order file should carry.
	ExpectedFields []string
	// FuzzyMatch switches header validation from exact (case-insensitive
	// equality) to substring matching.
	FuzzyMatch bool
	// TemplateDir holds one output template per template type, named
	// "<type>.xlsx".
	TemplateDir string
	// DefaultTemplate is the template type used when a generate request
	// does not name one.
	DefaultTemplate string
	// DownloadBasePath prefixes generated download URLs, e.g. "/download".
	DownloadBasePath string
}

type Dependency struct {
	Store   Store
	Files   Gateway
	Clock   Clock
	ID      pkguid.StringID
	Options Options
}

type Usecase struct {
	store   Store
	files   Gateway
	clock   Clock
	id      pkguid.StringID
	options Options
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	options := dep.Options
	if options.DefaultTemplate == "" {
		options.DefaultTemplate = "standard"
	}
	if options.DownloadBasePath == "" {
		options.DownloadBasePath = "/download"
	}

	return &Usecase{
		store:   dep.Store,
		files:   dep.Files,
		clock:   clock,
		id:      dep.ID,
		options: options,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Upload stores the incoming file, reads its bounded preview, and validates
// the headers. Validation problems never fail the upload; they ride along in
// the result.
func (u *Usecase) Upload(ctx context.Context, content io.Reader, originalName string) (UploadResult, error) {
	if u.files == nil || u.id == nil {
		return UploadResult{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	uploaded, err := u.files.Store(ctx, content, originalName)
	if err != nil {
		return UploadResult{}, normalizeErr(err)
	}

	preview, err := tabular.ReadPreview(uploaded.Path, uploaded.Ext)
	if err != nil {
		return UploadResult{}, normalizeErr(err)
	}

	validation := Validate(preview.Headers, u.options.ExpectedFields, u.options.FuzzyMatch)

	slog.InfoContext(ctx, "upload accepted",
		"file_id", uploaded.ID,
		"original_name", uploaded.OriginalName,
		"headers", len(preview.Headers),
		"preview_rows", preview.TotalRows,
		"valid", validation.Valid,
	)

	return UploadResult{
		File:       uploaded,
		Preview:    preview,
		Validation: validation,
	}, nil
}

// SaveMapping persists a mapping definition under its name, overwriting any
// existing record with the same name.
func (u *Usecase) SaveMapping(ctx context.Context, input SaveMappingInput) (SaveMappingResult, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return SaveMappingResult{}, pkgerror.NewInvalidInput(errors.New("mappingName is required"))
	}
	if len(input.Rules) == 0 {
		return SaveMappingResult{}, pkgerror.NewInvalidInput(errors.New("mappingRules is required"))
	}

	def := entity.MappingDefinition{
		Name:         name,
		CreatedAt:    u.clock.Now().UTC(),
		SourceFields: input.SourceFields,
		TargetFields: input.TargetFields,
		Rules:        input.Rules,
	}

	if err := u.store.Save(ctx, def); err != nil {
		return SaveMappingResult{}, normalizeErr(err)
	}

	return SaveMappingResult{MappingID: name}, nil
}

// Generate loads the uploaded file and the named mapping, converts every row
// into a copy of the requested template, and stores the output in the same
// storage area the downloads are served from.
func (u *Usecase) Generate(ctx context.Context, input GenerateInput) (GenerateResult, error) {
	fileID := strings.TrimSpace(input.FileID)
	if fileID == "" {
		return GenerateResult{}, pkgerror.NewInvalidInput(errors.New("fileId is required"))
	}
	mappingID := strings.TrimSpace(input.MappingID)
	if mappingID == "" {
		return GenerateResult{}, pkgerror.NewInvalidInput(errors.New("mappingId is required"))
	}

	mapping, err := u.store.Load(ctx, mappingID)
	if err != nil {
		if errors.Is(err, pkgerror.ErrNotFound) {
			return GenerateResult{}, pkgerror.NewBusiness(fmt.Sprintf("mapping %q not found", mappingID), pkgerror.CodeNotFound)
		}
		return GenerateResult{}, normalizeErr(err)
	}

	sourcePath, err := u.files.Resolve(fileID)
	if err != nil {
		return GenerateResult{}, normalizeErr(err)
	}

	templatePath, err := u.templatePath(input.TemplateType)
	if err != nil {
		return GenerateResult{}, err
	}

	outputName := fmt.Sprintf("gen_%s_%s.xlsx", u.clock.Now().UTC().Format("20060102150405"), u.id.Generate())
	outputPath, err := u.files.Resolve(outputName)
	if err != nil {
		return GenerateResult{}, normalizeErr(err)
	}

	result, err := convert.Convert(sourcePath, strings.ToLower(filepath.Ext(fileID)), templatePath, outputPath, mapping)
	if err != nil {
		return GenerateResult{}, normalizeErr(err)
	}

	slog.InfoContext(ctx, "conversion finished",
		"file_id", fileID,
		"mapping_id", mappingID,
		"output", result.FileName,
		"processed_rows", result.ProcessedRows,
		"row_errors", len(result.RowErrors),
	)

	return GenerateResult{
		FileName:      result.FileName,
		DownloadURL:   path.Join(u.options.DownloadBasePath, result.FileName),
		ProcessedRows: result.ProcessedRows,
		RowErrors:     result.RowErrors,
	}, nil
}

// Fetch streams a stored file (an upload or a generated output) by name.
func (u *Usecase) Fetch(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	reader, size, err := u.files.Open(ctx, name)
	if err != nil {
		return nil, 0, normalizeErr(err)
	}
	return reader, size, nil
}

// templatePath maps a template type onto a workbook inside the template
// directory. The type must be a bare name; anything path-like is rejected.
func (u *Usecase) templatePath(templateType string) (string, error) {
	templateType = strings.TrimSpace(templateType)
	if templateType == "" {
		templateType = u.options.DefaultTemplate
	}
	if strings.ContainsAny(templateType, `/\`) || strings.Contains(templateType, "..") {
		return "", pkgerror.NewInvalidInput(fmt.Errorf("invalid template type %q", templateType))
	}

	return filepath.Join(u.options.TemplateDir, templateType+".xlsx"), nil
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
