// internal/onboarding/flow.go
//
// Flow is the onboarding state machine. It owns the step index and the working
// form, and hands a UserProfile to its completion callback when the user leaves
// the last step. A Flow belongs to one interactive session and is not safe for
// concurrent use.

package onboarding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kingrea/retireplan/internal/catalog"
	"github.com/kingrea/retireplan/internal/projection"
)

var (
	// ErrCompleted is returned by mutations attempted after the flow finished.
	ErrCompleted = errors.New("onboarding: flow already completed")
	// ErrUnknownGoal indicates a label outside the goal catalog.
	ErrUnknownGoal = errors.New("onboarding: unknown goal")
	// ErrUnknownRisk indicates a risk value outside the catalog.
	ErrUnknownRisk = errors.New("onboarding: unknown risk tolerance")
)

// Recorder receives one line per state change. *logbook.Logbook satisfies it.
type Recorder interface {
	Info(format string, args ...any)
}

// Option customizes Flow construction.
type Option func(*Flow)

// WithInitialForm seeds the working form. Goals outside the catalog are dropped.
func WithInitialForm(form WorkingForm) Option {
	return func(f *Flow) {
		seeded := form.Clone()
		seeded.FinancialGoals = nil
		for _, g := range form.FinancialGoals {
			if g.Known() && !seeded.HasGoal(g) {
				seeded.toggle(g)
			}
		}
		if !seeded.RiskTolerance.Valid() {
			seeded.RiskTolerance = catalog.DefaultRisk
		}
		f.form = seeded
	}
}

// OnComplete registers the callback that receives the finalized profile.
func OnComplete(fn func(UserProfile)) Option {
	return func(f *Flow) {
		f.onComplete = fn
	}
}

// WithRecorder attaches a journal for transition lines. Each line is
// prefixed with the flow id.
func WithRecorder(r Recorder) Option {
	return func(f *Flow) {
		f.recorder = r
		f.scope = nil
	}
}

// WithScopedRecorder builds the journal from the final flow id, for recorders
// that carry the id as a structured field. Lines are not prefixed.
func WithScopedRecorder(scope func(flowID string) Recorder) Option {
	return func(f *Flow) {
		f.recorder = nil
		f.scope = scope
	}
}

// WithID overrides the generated flow identifier.
func WithID(id string) Option {
	return func(f *Flow) {
		if id = strings.TrimSpace(id); id != "" {
			f.id = id
		}
	}
}

// Flow drives one pass through the wizard.
type Flow struct {
	id         string
	step       Step
	form       WorkingForm
	completed  bool
	onComplete func(UserProfile)
	recorder   Recorder
	scope      func(flowID string) Recorder
	scoped     bool
}

// New starts a flow on the first step with DefaultForm unless overridden.
func New(opts ...Option) *Flow {
	f := &Flow{
		id:   uuid.NewString(),
		step: FirstStep,
		form: DefaultForm(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	if f.scope != nil {
		f.recorder = f.scope(f.id)
		f.scoped = true
	}
	f.record("flow started on step %d", int(f.step))
	return f
}

// ID identifies the flow in logs.
func (f *Flow) ID() string { return f.id }

// Step returns the current step. A completed flow stays on LastStep.
func (f *Flow) Step() Step { return f.step }

// Completed reports whether the profile has been emitted.
func (f *Flow) Completed() bool { return f.completed }

// Form returns a copy of the working form.
func (f *Flow) Form() WorkingForm { return f.form.Clone() }

// CanAdvance reports whether Advance would change state.
func (f *Flow) CanAdvance() bool {
	if f.completed {
		return false
	}
	if f.step == StepIdentity {
		return f.form.Name != ""
	}
	return true
}

// CanRetreat reports whether Retreat would change state.
func (f *Flow) CanRetreat() bool {
	return !f.completed && f.step > FirstStep
}

// Advance moves forward one step, or completes the flow from the last step.
// It returns false and changes nothing when the move is not allowed: leaving
// the first step with an empty name, or any call after completion.
func (f *Flow) Advance() bool {
	if !f.CanAdvance() {
		if !f.completed {
			f.record("advance blocked on step %d", int(f.step))
		}
		return false
	}
	if f.step < LastStep {
		f.step++
		f.record("advanced to step %d", int(f.step))
		return true
	}
	profile := newProfile(f.form)
	f.completed = true
	f.form = WorkingForm{}
	f.record("completed with %d goal(s), risk %s", len(profile.FinancialGoals), profile.RiskTolerance)
	if f.onComplete != nil {
		f.onComplete(profile)
	}
	return true
}

// Retreat moves back one step. It is a no-op on the first step and after completion.
func (f *Flow) Retreat() bool {
	if !f.CanRetreat() {
		return false
	}
	f.step--
	f.record("retreated to step %d", int(f.step))
	return true
}

// SetField parses raw and stores it in exactly one field. Numeric fields reject
// text that does not parse and keep their previous value.
func (f *Flow) SetField(field Field, raw string) error {
	if f.completed {
		return ErrCompleted
	}
	return f.form.assign(field, raw)
}

// ToggleGoal selects g when it is not selected and deselects it otherwise.
func (f *Flow) ToggleGoal(g catalog.Goal) error {
	if f.completed {
		return ErrCompleted
	}
	if !g.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownGoal, string(g))
	}
	f.form.toggle(g)
	return nil
}

// SelectRisk replaces the active risk tolerance.
func (f *Flow) SelectRisk(r catalog.RiskTolerance) error {
	if f.completed {
		return ErrCompleted
	}
	if !r.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRisk, string(r))
	}
	f.form.RiskTolerance = r
	return nil
}

// Snapshot is the read view consumed by the UI on every render.
type Snapshot struct {
	FlowID            string
	Step              Step
	TotalSteps        int
	Percent           int
	Form              WorkingForm
	Projection        decimal.Decimal
	YearsToRetirement int
	CanAdvance        bool
	CanRetreat        bool
	Completed         bool
}

// Snapshot computes the projection from the current form.
func (f *Flow) Snapshot() Snapshot {
	form := f.form.Clone()
	return Snapshot{
		FlowID:            f.id,
		Step:              f.step,
		TotalSteps:        TotalSteps,
		Percent:           f.step.Percent(),
		Form:              form,
		Projection:        projection.Estimate(form.CurrentSuper, form.MonthlyContribution, form.Age, form.RetirementAge),
		YearsToRetirement: projection.YearsToRetirement(form.Age, form.RetirementAge),
		CanAdvance:        f.CanAdvance(),
		CanRetreat:        f.CanRetreat(),
		Completed:         f.completed,
	}
}

func (f *Flow) record(format string, args ...any) {
	if f.recorder == nil {
		return
	}
	if f.scoped {
		f.recorder.Info(format, args...)
		return
	}
	f.recorder.Info("flow %s · "+format, append([]any{f.id}, args...)...)
}
