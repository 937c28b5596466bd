package update_cell

import (
	"context"

	"github.com/mamicio/SG-StudioService/pkg/autosave"
)

type CellSaver interface {
	Edit(ctx context.Context, cell autosave.CellRef, value string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
