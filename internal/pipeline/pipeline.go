package pipeline

import (
	"context"
	"fmt"

	"github.com/spigell/spkit/internal/markup"
	"go.uber.org/zap"
)

// Step represents a single transformation applied to a document.
type Step interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate() error
	Apply(ctx context.Context, deps Deps, doc *Document) (*Document, Report, error)
}

// Deps aggregates dependencies shared across all steps.
type Deps struct {
	Logger *zap.Logger
}

// Document is the unit of work flowing through the pipeline.
type Document struct {
	Name string
	Body string
	// Truncated is set once a truncate step cut the body.
	Truncated bool
}

// Report describes the result of executing a step.
type Report struct {
	Initial int
	Final   int
	Details map[string]string
}

// Status represents runtime information about a step.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by steps that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// base carries the enable/disable bookkeeping shared by the built-in steps.
type base struct {
	disabled bool
	reason   string
}

func (b *base) Disable(reason string) {
	b.disabled = true
	b.reason = reason
}

func (b *base) IsEnabled() bool { return !b.disabled }

// DisableByName marks a step with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Step, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied steps sequentially and returns the resulting document.
func Run(ctx context.Context, deps Deps, steps []Step, doc *Document) (*Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !step.IsEnabled() {
			logger.Info("step disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, deps, doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		logger.Info("pipeline step",
			zap.String("name", step.Name()),
			zap.String("document", doc.Name),
			zap.Int("initial", info.Initial),
			zap.Int("final", info.Final),
		)

		doc = next
	}

	return doc, nil
}

// Describe returns status entries for the provided steps.
func Describe(steps []Step) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

func report(before, after string) Report {
	return Report{
		Initial: markup.VisibleLength(before),
		Final:   markup.VisibleLength(after),
	}
}
