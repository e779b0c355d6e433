package manifest

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/scenegraph/core"
)

// maxParallelLoads bounds concurrent file reads in LoadAll.
const maxParallelLoads = 8

// Scene is one loaded file.
type Scene struct {
	Path     string
	Graph    *core.Graph
	Document *Document
}

// LoadAll loads every path concurrently. Each graph is built and owned by a
// single goroutine, so no graph is shared while loading. The result keeps the
// order of paths; the first failure cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string, opts ...Option) ([]Scene, error) {
	scenes := make([]Scene, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelLoads)

	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, doc, err := Load(path, opts...)
			if err != nil {
				return err
			}
			scenes[i] = Scene{Path: path, Graph: g, Document: doc}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return scenes, nil
}
