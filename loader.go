package decor

import (
	internalLoader "github.com/goliatone/go-decor/internal/loader"
	"github.com/goliatone/go-decor/pkg/source"
)

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...source.LoaderOption) source.Loader {
	return internalLoader.New(source.NewLoaderOptions(options...))
}
