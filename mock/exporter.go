package mock

import (
	"context"

	"github.com/fwojciec/selkocards"
)

var _ selkocards.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of selkocards.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, name string, payload string) (string, error)
}

func (e *Exporter) Export(ctx context.Context, name string, payload string) (string, error) {
	return e.ExportFn(ctx, name, payload)
}
