package orchestrator

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-resolve/internal/diagnostic"
	"github.com/griffnb/core-resolve/internal/domain"
	"github.com/griffnb/core-resolve/internal/emitter"
	"golang.org/x/sync/errgroup"
)

// operationResult pairs an operation name with its emitted form for
// deterministic ordering.
type operationResult struct {
	name      string
	path      string
	method    string
	operation *spec.Operation
}

// resolveOperationsParallel emits every operation concurrently using an
// errgroup bounded by the number of CPUs. Each operation's resolution is
// independent; only ordering within one operation's responses matters, and
// that happens inside the resolver. Results are sorted by operation name so
// output does not depend on goroutine scheduling.
func (s *Service) resolveOperationsParallel(ops []*domain.Operation, sink diagnostic.Sink) ([]operationResult, error) {
	var (
		mu        sync.Mutex
		collected []operationResult
	)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, op := range ops {
		if op == nil {
			continue
		}

		op := op

		g.Go(func() error {
			operation, err := s.emitter.OperationSpec(op, sink)
			if err != nil {
				return fmt.Errorf("failed to emit operation %s: %w", op.Name, err)
			}

			mu.Lock()
			collected = append(collected, operationResult{
				name:      op.Name,
				path:      emitter.PathFor(op),
				method:    emitter.MethodFor(op),
				operation: operation,
			})
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].name < collected[j].name
	})

	return collected, nil
}
