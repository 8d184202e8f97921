package inbound

import (
	"context"
	"io"
	"net/http"

	"github.com/jk0601/agorder/internal/order/usecase"
	"github.com/jk0601/agorder/internal/pkg/pkgrouter"
)

type uc interface {
	Upload(ctx context.Context, content io.Reader, originalName string) (usecase.UploadResult, error)
	SaveMapping(ctx context.Context, input usecase.SaveMappingInput) (usecase.SaveMappingResult, error)
	Generate(ctx context.Context, input usecase.GenerateInput) (usecase.GenerateResult, error)
	Fetch(ctx context.Context, name string) (io.ReadCloser, int64, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc, router: r}

	r.POST("/upload", end.Upload)
	r.POST("/mappings", end.SaveMapping)
	r.POST("/generate", end.Generate)

	r.Handle(http.MethodGet, "/download/:filename", http.HandlerFunc(end.Download))
}
