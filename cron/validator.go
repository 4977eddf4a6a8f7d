package cron

import (
	"context"
	"errors"

	"github.com/LerianStudio/lib-cron/internal/nilcheck"
	"github.com/LerianStudio/lib-cron/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	instrumentationName = "github.com/LerianStudio/lib-cron/cron"
	validationsMetric   = "cron.validations"
	resultValid         = "valid"
	resultInvalid       = "invalid"
	scopeExpression     = "expression"
)

// Validator checks expressions against a fixed set of Options and reports
// rejections to an optional logger and meter. A Validator is immutable once
// built and safe for concurrent use.
type Validator struct {
	opts          Options
	logger        log.Logger
	meterProvider metric.MeterProvider
	validations   metric.Int64Counter
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithOptions replaces the grammar options wholesale.
func WithOptions(opts Options) ValidatorOption {
	return func(v *Validator) {
		v.opts = opts
	}
}

// WithDialect applies the preset Options of a dialect.
func WithDialect(d Dialect) ValidatorOption {
	return func(v *Validator) {
		v.opts = d.Options()
	}
}

// WithSeconds requires a leading seconds field.
func WithSeconds() ValidatorOption {
	return func(v *Validator) { v.opts.Seconds = true }
}

// WithAlias enables month and weekday names.
func WithAlias() ValidatorOption {
	return func(v *Validator) { v.opts.Alias = true }
}

// WithBlankDay enables ? in day-of-month or day-of-week.
func WithBlankDay() ValidatorOption {
	return func(v *Validator) { v.opts.AllowBlankDay = true }
}

// WithSevenAsSunday accepts 7 as Sunday in day-of-week.
func WithSevenAsSunday() ValidatorOption {
	return func(v *Validator) { v.opts.AllowSevenAsSunday = true }
}

// WithHashed enables H and H(a-b).
func WithHashed() ValidatorOption {
	return func(v *Validator) { v.opts.AllowHashed = true }
}

// WithLast enables the L family of last-day markers.
func WithLast() ValidatorOption {
	return func(v *Validator) { v.opts.AllowLast = true }
}

// WithWeekday enables nW nearest-weekday markers.
func WithWeekday() ValidatorOption {
	return func(v *Validator) { v.opts.AllowWeekday = true }
}

// WithLogger sets the logger used for rejected expressions. Nil loggers are ignored.
func WithLogger(logger log.Logger) ValidatorOption {
	return func(v *Validator) {
		if nilcheck.Interface(logger) {
			return
		}

		v.logger = logger
	}
}

// WithMeterProvider sets the provider for the cron.validations counter. Nil providers are ignored.
func WithMeterProvider(provider metric.MeterProvider) ValidatorOption {
	return func(v *Validator) {
		if nilcheck.Interface(provider) {
			return
		}

		v.meterProvider = provider
	}
}

// New builds a Validator. Options are applied in order, so a later WithDialect
// or WithOptions overrides earlier per-flag options.
func New(opts ...ValidatorOption) *Validator {
	v := &Validator{
		logger:        log.NewNop(),
		meterProvider: noop.NewMeterProvider(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}

	counter, err := v.meterProvider.Meter(instrumentationName).Int64Counter(
		validationsMetric,
		metric.WithDescription("Number of cron expressions validated, by result."),
		metric.WithUnit("{expression}"),
	)
	if err != nil {
		v.logger.Log(context.Background(), log.LevelWarn, "cron validations counter unavailable", log.Err(err))

		counter = noop.Int64Counter{}
	}

	v.validations = counter

	return v
}

// Options returns the grammar options the Validator applies.
func (v *Validator) Options() Options {
	if v == nil {
		return Options{}
	}

	return v.opts
}

// IsValid reports whether expr is valid.
func (v *Validator) IsValid(expr string) bool {
	return v.Validate(expr) == nil
}

// Validate returns nil for a valid expression or an error wrapping ErrInvalidExpression.
func (v *Validator) Validate(expr string) error {
	return v.ValidateContext(context.Background(), expr)
}

// ValidateContext is Validate with a context used only to correlate logs and
// metrics with the caller's trace.
func (v *Validator) ValidateContext(ctx context.Context, expr string) error {
	if v == nil {
		return validate(expr, Options{})
	}

	if ctx == nil {
		ctx = context.Background()
	}

	err := validate(expr, v.opts)
	v.record(ctx, expr, err)

	return err
}

func (v *Validator) record(ctx context.Context, expr string, err error) {
	if err == nil {
		v.validations.Add(ctx, 1, metric.WithAttributes(attribute.String("result", resultValid)))

		return
	}

	scope := scopeExpression

	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		scope = fieldErr.Field.String()
	}

	v.validations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", resultInvalid),
		attribute.String("field", scope),
	))

	if v.logger.Enabled(log.LevelDebug) {
		v.logger.Log(ctx, log.LevelDebug, "cron expression rejected",
			log.String("expression", expr),
			log.String("field", scope),
			log.Err(err),
		)
	}
}
