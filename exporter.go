package selkocards

import "context"

// Exporter delivers a serialized deck to the user.
type Exporter interface {
	// Export stores payload under name and returns where it went.
	Export(ctx context.Context, name string, payload string) (location string, err error)
}
