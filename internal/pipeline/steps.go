package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/spigell/spkit/internal/failure"
	"github.com/spigell/spkit/internal/markup"
	"go.uber.org/zap"
)

const (
	StepNormalize = "normalize"
	StepStrip     = "strip"
	StepTruncate  = "truncate"
)

// StepConfig is a single pipeline entry as it appears in the configuration file.
type StepConfig struct {
	Name    string         `mapstructure:"name"`
	Enabled *bool          `mapstructure:"enabled"`
	Options map[string]any `mapstructure:"options"`
}

// Build creates steps from their configuration entries, keeping the order.
func Build(configs []StepConfig) ([]Step, error) {
	steps := make([]Step, 0, len(configs))
	for i, cfg := range configs {
		step, err := newStep(cfg)
		if err != nil {
			return nil, fmt.Errorf("pipeline entry %d: %w", i, err)
		}

		if cfg.Enabled != nil && !*cfg.Enabled {
			step.Disable("disabled in config")
		}

		steps = append(steps, step)
	}
	return steps, nil
}

func newStep(cfg StepConfig) (Step, error) {
	switch cfg.Name {
	case StepNormalize:
		return NewNormalize(), nil
	case StepStrip:
		var opts StripOptions
		if err := mapstructure.Decode(cfg.Options, &opts); err != nil {
			return nil, fmt.Errorf("decoding %s options: %w", cfg.Name, err)
		}
		return NewStrip(opts), nil
	case StepTruncate:
		var opts TruncateOptions
		if err := mapstructure.Decode(cfg.Options, &opts); err != nil {
			return nil, fmt.Errorf("decoding %s options: %w", cfg.Name, err)
		}
		return NewTruncate(opts), nil
	case "":
		return nil, failure.MissingSetting("pipeline step name")
	default:
		return nil, fmt.Errorf("unknown step %q", cfg.Name)
	}
}

type normalizeStep struct {
	base
}

// NewNormalize creates a step that collapses whitespace the way the truncator does.
func NewNormalize() Step {
	return &normalizeStep{}
}

func (s *normalizeStep) Name() string { return StepNormalize }

func (s *normalizeStep) Validate() error { return nil }

func (s *normalizeStep) Apply(_ context.Context, _ Deps, doc *Document) (*Document, Report, error) {
	next := *doc
	next.Body = markup.NormalizeSpace(doc.Body)
	return &next, report(doc.Body, next.Body), nil
}

// StripOptions configures the strip step.
type StripOptions struct {
	// Plain additionally decodes entities and trims the result.
	Plain bool `mapstructure:"plain"`
}

type stripStep struct {
	base
	opts StripOptions
}

// NewStrip creates a step that removes all tags from the document.
func NewStrip(opts StripOptions) Step {
	return &stripStep{opts: opts}
}

func (s *stripStep) Name() string { return StepStrip }

func (s *stripStep) Validate() error { return nil }

func (s *stripStep) Apply(_ context.Context, _ Deps, doc *Document) (*Document, Report, error) {
	next := *doc
	if s.opts.Plain {
		next.Body = markup.PlainText(doc.Body)
	} else {
		next.Body = markup.StripHTML(doc.Body)
	}
	return &next, report(doc.Body, next.Body), nil
}

// TruncateOptions configures the truncate step.
type TruncateOptions struct {
	Limit         int    `mapstructure:"limit"`
	Ellipsis      string `mapstructure:"ellipsis"`
	EscapeCut     bool   `mapstructure:"escape-cut"`
	SkipVoid      bool   `mapstructure:"skip-void"`
	MaxIterations int    `mapstructure:"max-iterations"`
}

func (o TruncateOptions) toMarkup() markup.Options {
	return markup.Options{
		Ellipsis:      o.Ellipsis,
		MaxIterations: o.MaxIterations,
		EscapeCut:     o.EscapeCut,
		SkipVoid:      o.SkipVoid,
	}
}

type truncateStep struct {
	base
	opts TruncateOptions
}

// NewTruncate creates a step that shortens the document with markup.TruncateWith.
func NewTruncate(opts TruncateOptions) Step {
	return &truncateStep{opts: opts}
}

func (s *truncateStep) Name() string { return StepTruncate }

func (s *truncateStep) Validate() error {
	if s.opts.Limit <= 0 {
		return failure.MissingSetting("truncate limit")
	}
	if s.opts.MaxIterations < 0 {
		return errors.New("max-iterations must not be negative")
	}
	return nil
}

func (s *truncateStep) Apply(_ context.Context, deps Deps, doc *Document) (*Document, Report, error) {
	res := markup.TruncateWith(doc.Body, s.opts.Limit, s.opts.toMarkup())
	if err := res.Err(); err != nil {
		return nil, Report{}, fmt.Errorf("truncating %q: %w", doc.Name, err)
	}

	if deps.Logger != nil && res.Truncated() {
		deps.Logger.Debug("document truncated",
			zap.String("document", doc.Name),
			zap.Int("visible", res.Visible),
			zap.Strings("closed", res.Closed),
		)
	}

	next := *doc
	next.Body = res.Output
	next.Truncated = next.Truncated || res.Truncated()

	info := report(doc.Body, next.Body)
	info.Details = map[string]string{
		"status":  res.Status.String(),
		"visible": strconv.Itoa(res.Visible),
	}
	return &next, info, nil
}

func (s *truncateStep) Status() Status {
	status := Status{
		Name:    s.Name(),
		Enabled: s.IsEnabled(),
		Reason:  s.reason,
		Details: map[string]string{"limit": strconv.Itoa(s.opts.Limit)},
	}
	if s.opts.Ellipsis != "" {
		status.Details["ellipsis"] = s.opts.Ellipsis
	}
	return status
}
