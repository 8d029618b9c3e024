package cmd

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/mozilla-ai/gnuusage/internal/config"
)

// loadDocuments loads every path concurrently and returns the documents in the order of paths.
// The first load error is returned once all loads have finished.
func loadDocuments(loader config.Loader, logger hclog.Logger, paths []string) ([]*config.Document, error) {
	docs := make([]*config.Document, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			path = strings.TrimSpace(path)
			doc, err := loader.Load(path)
			if err != nil {
				logger.Error("Failed to load usage document", "path", path, "error", err)
				return err
			}
			logger.Debug("Loaded usage document", "path", path, "options", len(doc.Options))
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return docs, nil
}
