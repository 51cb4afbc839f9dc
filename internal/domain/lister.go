package domain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"openheader.dev/pkg/openheader/internal/adapter"
	m "openheader.dev/pkg/openheader/internal/model"
)

// ListArgs contains the arguments for listing header/implementation pairs.
type ListArgs struct {
	Paths    []m.Path
	Exclude  []string
	Parallel int
}

// PairLister resolves the companion of every recognised file under a set of
// paths. Each file is still resolved in its own directory only.
type PairLister interface {
	List(ctx context.Context, args ListArgs) ([]m.Pair, error)
}

type pairLister struct {
	fsAdapter adapter.SourceFSAdapter
	resolver  CompanionResolver
}

// NewPairLister constructs a PairLister.
func NewPairLister(fsAdapter adapter.SourceFSAdapter, resolver CompanionResolver) PairLister {
	return &pairLister{
		fsAdapter: fsAdapter,
		resolver:  resolver,
	}
}

func (l *pairLister) List(ctx context.Context, args ListArgs) ([]m.Pair, error) {
	files, err := l.fsAdapter.Expand(ctx, args.Paths, args.Exclude)
	if err != nil {
		return nil, fmt.Errorf("expand paths: %w", err)
	}

	var sources []m.Path

	for _, file := range files {
		if ClassifyPath(file) != m.ClassNone {
			sources = append(sources, file)
		}
	}

	pairs := make([]m.Pair, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for i, source := range sources {
		i, source := i, source
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			pairs[i] = m.Pair{
				Source:    source,
				Class:     ClassifyPath(source),
				Companion: l.resolver.Resolve(groupCtx, source),
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("resolve companions: %w", err)
	}

	return pairs, nil
}
