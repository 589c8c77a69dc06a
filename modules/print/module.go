// Package print provides a block that logs which example is running. It is
// handy in spec files to see hook and body ordering.
package print

import (
	"context"

	"github.com/specialistvlad/gospec/internal/ctxlog"
	"github.com/specialistvlad/gospec/internal/handlers"
)

// Module implements the handlers.Module interface for this package.
type Module struct{}

// OnRunPrint logs a record through the example's logger, which carries the
// example path.
func OnRunPrint(ctx context.Context) error {
	ctxlog.FromContext(ctx).Info("Print block reached.")
	return nil
}

// Register registers the handler.
func (m *Module) Register(h *handlers.Handlers) {
	h.RegisterBlock("print", OnRunPrint)
}
