package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/jk0601/agorder/internal/order"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.order.enabled") {
		closer, err := order.New(order.Dependency{
			Config: a.config,
			Router: a.router,
			ID:     a.uuid,
		})
		if err != nil {
			slog.Error("failed to init module order", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Order"] = closer
		}
	}
}
