// Package order wires the purchase-order conversion pipeline: upload and
// preview, mapping persistence, template-based generation, and download.
package order

import (
	"context"

	"github.com/jk0601/agorder/internal/order/inbound"
	"github.com/jk0601/agorder/internal/order/storage"
	"github.com/jk0601/agorder/internal/order/store"
	"github.com/jk0601/agorder/internal/order/usecase"
	"github.com/jk0601/agorder/internal/pkg/pkgconfig"
	"github.com/jk0601/agorder/internal/pkg/pkgrouter"
	"github.com/jk0601/agorder/internal/pkg/pkguid"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
	ID     pkguid.StringID
}

func New(dep Dependency) (func(context.Context) error, error) {
	mappings, err := store.NewFSStore(dep.Config.GetString("modules.order.mapping_dir"))
	if err != nil {
		return nil, err
	}

	fileID, err := pkguid.NewSnowflake()
	if err != nil {
		return nil, err
	}

	files, err := storage.NewDisk(dep.Config.GetString("modules.order.storage_dir"), fileID)
	if err != nil {
		return nil, err
	}

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	uc := usecase.New(usecase.Dependency{
		Store: mappings,
		Files: files,
		ID:    dep.ID,
		Options: usecase.Options{
			ExpectedFields:   dep.Config.GetArray("modules.order.validation.expected_fields"),
			FuzzyMatch:       dep.Config.GetString("modules.order.validation.mode") == "fuzzy",
			TemplateDir:      dep.Config.GetString("modules.order.template_dir"),
			DefaultTemplate:  dep.Config.GetString("modules.order.default_template"),
			DownloadBasePath: "/download",
		},
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil, nil
}
