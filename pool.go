package md2html

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps the number of concurrent workers.
	MaxWorkers = 32

	// cpuDivisor leaves headroom for the rest of the process.
	cpuDivisor = 2
)

// ResolveWorkers determines the worker count for parallel work.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by the site generator and CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return min(workers, MaxWorkers)
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	return max(MinWorkers, min(n, MaxWorkers))
}

// buildFunc builds the node for one block.
type buildFunc func(block string) (Node, error)

// buildBlocks builds one node per block with at most workers goroutines.
// Results are stored by index, so the output keeps the block order.
// The first error cancels the remaining work.
func buildBlocks(ctx context.Context, blocks []string, workers int, build buildFunc) ([]Node, error) {
	nodes := make([]Node, len(blocks))

	if workers <= 1 || len(blocks) < 2 {
		for i, block := range blocks {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			n, err := build(block)
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", i+1, err)
			}
			nodes[i] = n
		}
		return nodes, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, block := range blocks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := build(block)
			if err != nil {
				return fmt.Errorf("block %d: %w", i+1, err)
			}
			nodes[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nodes, nil
}
