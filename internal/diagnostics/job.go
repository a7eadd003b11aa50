package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spigell/spkit/internal/logger"
	"github.com/spigell/spkit/internal/utils"
)

// EventID is the trace event id used by the ensure-sources job.
const EventID = 103

// Job keeps the registry in sync with the configured areas.
type Job struct {
	Title    string
	Areas    []Area
	Interval time.Duration

	Registry *Registry
	Tracer   *logger.Tracer
}

// NewJob returns a job registering areas into registry.
func NewJob(areas []Area, registry *Registry, tracer *logger.Tracer) *Job {
	if registry == nil {
		registry = NewRegistry()
	}
	if tracer == nil {
		tracer = logger.NewTracer(nil)
	}

	return &Job{
		Title:    "Ensure Diagnostic Event Sources",
		Areas:    areas,
		Registry: registry,
		Tracer:   tracer,
	}
}

// Execute registers the configured areas once.
func (j *Job) Execute(ctx context.Context) error {
	j.Tracer.TraceSeverity("Start Processing ensure sources job.", EventID, logger.SeverityVerbose, logger.DefaultAreaCategory())

	if err := ctx.Err(); err != nil {
		return err
	}

	added, err := j.Registry.Ensure(j.Areas)
	if err != nil {
		j.Tracer.TraceSeverity("Exception occurred processing ensure sources job: "+err.Error(), EventID, logger.SeverityHigh, logger.DefaultAreaCategory())
		return fmt.Errorf("%s: %w", j.Title, err)
	}

	j.Tracer.TraceSeverity(fmt.Sprintf("Registered %d new diagnostic sources.", added), EventID, logger.SeverityVerbose, logger.DefaultAreaCategory())

	return nil
}

// Run executes the job, then again every Interval until ctx is done. A zero
// Interval runs the job once. Cancellation is not reported as an error.
func (j *Job) Run(ctx context.Context) error {
	for {
		if err := j.Execute(ctx); err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil
			}
			return err
		}

		if j.Interval <= 0 {
			return nil
		}

		if err := utils.WaitFor(ctx, j.Interval); err != nil {
			return nil
		}
	}
}
