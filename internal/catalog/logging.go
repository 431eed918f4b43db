package catalog

import (
	"io"

	"github.com/idlab-discover/uom-cli/internal/logging"
	"github.com/idlab-discover/uom-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Catalog:", PrefixColor: ui.FgCyan}

// SetLogger sets an optional destination for catalog logs.
// When set to nil, logging is disabled.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(kind string, format string, args ...any) {
	logger.Logf(kind, format, args...)
}
