package driver

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"weld/internal/ast"
	"weld/internal/diag"
)

// LoadAll loads many tree documents. Reading, hashing, and decoding run
// in parallel under a bounded errgroup; tree construction runs serially
// afterwards, since the node arena and the interner are single-writer.
// Paths are processed in sorted order, so the resulting package list and
// every interned ID are deterministic regardless of scheduling.
//
// A nil cache disables caching. The first failing file aborts the batch.
func (l *Loader) LoadAll(ctx context.Context, tree *ast.Tree, paths []string, cache *DiskCache, jobs int) ([]ast.NodeID, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	ordered := append([]string(nil), paths...)
	sort.Strings(ordered)

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Slots are per-goroutine, so no mutex is needed around docs.
	docs := make([]*Document, len(ordered))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(ordered)))
	for i, location := range ordered {
		i, location := i, location
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			doc, err := l.fetch(gctx, location, cache)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	packages := make([]ast.NodeID, 0, len(docs))
	for i, doc := range docs {
		pkg, err := l.Build(tree, doc, ordered[i])
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

// fetch reads one document, answering from the cache when the content
// digest matches a previous decode.
func (l *Loader) fetch(ctx context.Context, location string, cache *DiskCache) (*Document, error) {
	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		diag.ReportError(l.reporter, diag.LoadReadFailed, location, err.Error()).Emit()
		return nil, err
	}
	key := ContentDigest(data)
	if doc, hit, err := cache.Get(key); err == nil && hit {
		return doc, nil
	}
	doc, err := Decode(location, data)
	if err != nil {
		diag.ReportError(l.reporter, diag.LoadBadDocument, location, err.Error()).Emit()
		return nil, err
	}
	if cache != nil {
		// A failed cache write only costs the next run a decode.
		_ = cache.Put(key, doc)
	}
	return doc, nil
}
