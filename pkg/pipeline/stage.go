// Package pipeline provides the stage contract used by the orchestrator.
package pipeline

import "context"

// Stage is one step of a commit story run: compose the HTML, then capture it.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc adapts a function to Stage. Tests use it to stub single stages.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Stage.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
