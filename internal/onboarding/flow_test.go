package onboarding

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/retireplan/internal/catalog"
)

type recordingJournal struct {
	lines []string
}

func (r *recordingJournal) Info(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

// decimalComparer lets cmp.Diff compare decimal values numerically.
var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func namedFlow(t *testing.T, opts ...Option) *Flow {
	t.Helper()
	f := New(opts...)
	require.NoError(t, f.SetField(FieldName, "Ada"))
	return f
}

func TestNewFlowStartsOnFirstStepWithDefaults(t *testing.T) {
	f := New()
	assert.Equal(t, StepIdentity, f.Step())
	assert.False(t, f.Completed())
	assert.NotEmpty(t, f.ID())
	if diff := cmp.Diff(DefaultForm(), f.Form(), decimalComparer); diff != "" {
		t.Fatalf("default form mismatch (-want +got):\n%s", diff)
	}
}

func TestAdvanceBlockedUntilNameSet(t *testing.T) {
	f := New()
	assert.False(t, f.CanAdvance())
	assert.False(t, f.Advance())
	assert.Equal(t, StepIdentity, f.Step())

	require.NoError(t, f.SetField(FieldName, "Ada"))
	assert.True(t, f.CanAdvance())
	assert.True(t, f.Advance())
	assert.Equal(t, StepFinances, f.Step())
}

func TestLaterStepsAdvanceUnconditionally(t *testing.T) {
	f := namedFlow(t)
	require.True(t, f.Advance())
	require.NoError(t, f.SetField(FieldName, ""))
	assert.True(t, f.Advance())
	assert.Equal(t, StepRisk, f.Step())
	assert.True(t, f.Advance())
	assert.Equal(t, StepGoals, f.Step())
}

func TestRetreatThenAdvanceRoundTrips(t *testing.T) {
	for _, target := range []Step{StepFinances, StepRisk, StepGoals} {
		t.Run(target.Title(), func(t *testing.T) {
			f := namedFlow(t)
			for f.Step() < target {
				require.True(t, f.Advance())
			}
			require.True(t, f.Retreat())
			assert.Equal(t, target-1, f.Step())
			require.True(t, f.Advance())
			assert.Equal(t, target, f.Step())
		})
	}
}

func TestRetreatIsNoopOnFirstStep(t *testing.T) {
	f := namedFlow(t)
	assert.False(t, f.CanRetreat())
	assert.False(t, f.Retreat())
	assert.Equal(t, StepIdentity, f.Step())
}

func TestStepNeverSkips(t *testing.T) {
	f := namedFlow(t)
	prev := f.Step()
	for i := 0; i < 10; i++ {
		var moved bool
		if i%3 == 2 {
			moved = f.Retreat()
		} else {
			moved = f.Advance()
		}
		if f.Completed() {
			break
		}
		delta := int(f.Step()) - int(prev)
		if moved {
			assert.Contains(t, []int{-1, 1}, delta)
		} else {
			assert.Zero(t, delta)
		}
		prev = f.Step()
	}
}

func TestSetFieldTouchesOnlyNamedField(t *testing.T) {
	f := New()
	before := f.Form()
	require.NoError(t, f.SetField(FieldMonthlyContribution, "750"))
	after := f.Form()

	want := before.Clone()
	want.MonthlyContribution = decimal.NewFromInt(750)
	if diff := cmp.Diff(want, after, decimalComparer); diff != "" {
		t.Fatalf("unexpected form change (-want +got):\n%s", diff)
	}
}

func TestSetFieldNeverChangesStep(t *testing.T) {
	f := namedFlow(t)
	require.True(t, f.Advance())
	require.NoError(t, f.SetField(FieldAge, "41"))
	require.NoError(t, f.SetField(FieldName, ""))
	assert.Equal(t, StepFinances, f.Step())
}

func TestSetFieldParsing(t *testing.T) {
	tests := []struct {
		field Field
		raw   string
		check func(t *testing.T, form WorkingForm)
	}{
		{FieldAge, " 42 ", func(t *testing.T, form WorkingForm) { assert.Equal(t, 42, form.Age) }},
		{FieldRetirementAge, "60", func(t *testing.T, form WorkingForm) { assert.Equal(t, 60, form.RetirementAge) }},
		{FieldCurrentSuper, "$120,500.25", func(t *testing.T, form WorkingForm) {
			assert.True(t, form.CurrentSuper.Equal(decimal.RequireFromString("120500.25")))
		}},
		{FieldMonthlyContribution, "-50", func(t *testing.T, form WorkingForm) {
			assert.True(t, form.MonthlyContribution.Equal(decimal.NewFromInt(-50)))
		}},
		{FieldAge, "-3", func(t *testing.T, form WorkingForm) { assert.Equal(t, -3, form.Age) }},
	}
	for _, tt := range tests {
		t.Run(string(tt.field)+"="+tt.raw, func(t *testing.T) {
			f := New()
			require.NoError(t, f.SetField(tt.field, tt.raw))
			tt.check(t, f.Form())
		})
	}
}

func TestSetFieldRejectsMalformedNumbers(t *testing.T) {
	inputs := map[Field][]string{
		FieldAge:                 {"", "abc", "30.5", "3O"},
		FieldRetirementAge:       {"sixty", " "},
		FieldCurrentSuper:        {"", "$", "12k", "1.2.3"},
		FieldMonthlyContribution: {"five hundred"},
	}
	for field, raws := range inputs {
		for _, raw := range raws {
			f := New()
			before := f.Form()
			err := f.SetField(field, raw)
			require.ErrorIsf(t, err, ErrMalformedNumber, "%s=%q", field, raw)
			if diff := cmp.Diff(before, f.Form(), decimalComparer); diff != "" {
				t.Fatalf("%s=%q changed the form (-before +after):\n%s", field, raw, diff)
			}
		}
	}
}

func TestSetFieldUnknownField(t *testing.T) {
	f := New()
	assert.ErrorIs(t, f.SetField(Field("riskTolerance"), "growth"), ErrUnknownField)
}

func TestToggleGoalTwiceRestoresSet(t *testing.T) {
	f := New()
	require.NoError(t, f.ToggleGoal(catalog.GoalTravel))
	before := f.Form().FinancialGoals

	require.NoError(t, f.ToggleGoal(catalog.GoalInheritance))
	require.NoError(t, f.ToggleGoal(catalog.GoalInheritance))
	assert.Equal(t, before, f.Form().FinancialGoals)
}

func TestToggleGoalKeepsCatalogOrder(t *testing.T) {
	f := New()
	for _, g := range []catalog.Goal{catalog.GoalTravel, catalog.GoalMaximizeSavings, catalog.GoalBuyProperty} {
		require.NoError(t, f.ToggleGoal(g))
	}
	assert.Equal(t, []catalog.Goal{catalog.GoalMaximizeSavings, catalog.GoalBuyProperty, catalog.GoalTravel}, f.Form().FinancialGoals)
}

func TestToggleGoalRejectsUnknownLabel(t *testing.T) {
	f := New()
	assert.ErrorIs(t, f.ToggleGoal("Buy a boat"), ErrUnknownGoal)
	assert.Empty(t, f.Form().FinancialGoals)
}

func TestSelectRisk(t *testing.T) {
	f := New()
	assert.Equal(t, catalog.RiskBalanced, f.Form().RiskTolerance)
	require.NoError(t, f.SelectRisk(catalog.RiskAggressive))
	assert.Equal(t, catalog.RiskAggressive, f.Form().RiskTolerance)
	assert.ErrorIs(t, f.SelectRisk("yolo"), ErrUnknownRisk)
	assert.Equal(t, catalog.RiskAggressive, f.Form().RiskTolerance)
}

func TestCompletionFiresOnceWithAllFields(t *testing.T) {
	var emitted []UserProfile
	f := namedFlow(t, OnComplete(func(p UserProfile) { emitted = append(emitted, p) }))
	require.NoError(t, f.SetField(FieldAge, "35"))
	require.NoError(t, f.SetField(FieldRetirementAge, "60"))
	require.NoError(t, f.SetField(FieldCurrentSuper, "80000"))
	require.NoError(t, f.SetField(FieldMonthlyContribution, "900"))
	require.NoError(t, f.SelectRisk(catalog.RiskGrowth))
	require.NoError(t, f.ToggleGoal(catalog.GoalEarlyRetirement))
	require.NoError(t, f.ToggleGoal(catalog.GoalSteadyIncome))

	for f.Step() < LastStep {
		require.True(t, f.Advance())
	}
	require.Empty(t, emitted)
	require.True(t, f.Advance())
	require.Len(t, emitted, 1)
	assert.True(t, f.Completed())

	want := UserProfile{
		Name:                "Ada",
		Age:                 35,
		RetirementAge:       60,
		CurrentSuper:        decimal.NewFromInt(80000),
		MonthlyContribution: decimal.NewFromInt(900),
		RiskTolerance:       catalog.RiskGrowth,
		FinancialGoals:      []catalog.Goal{catalog.GoalSteadyIncome, catalog.GoalEarlyRetirement},
		Completed:           true,
	}
	if diff := cmp.Diff(want, emitted[0], decimalComparer); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}

	assert.False(t, f.Advance())
	assert.False(t, f.Retreat())
	assert.Len(t, emitted, 1)
	assert.Equal(t, LastStep, f.Step())
}

func TestCompletedFlowRejectsMutations(t *testing.T) {
	f := namedFlow(t)
	for !f.Completed() {
		require.True(t, f.Advance())
	}
	assert.ErrorIs(t, f.SetField(FieldName, "Grace"), ErrCompleted)
	assert.ErrorIs(t, f.ToggleGoal(catalog.GoalTravel), ErrCompleted)
	assert.ErrorIs(t, f.SelectRisk(catalog.RiskGrowth), ErrCompleted)
	assert.Equal(t, WorkingForm{}, f.Form())
}

func TestEmittedProfileDoesNotAliasFlow(t *testing.T) {
	var profile UserProfile
	f := namedFlow(t, OnComplete(func(p UserProfile) { profile = p }))
	require.NoError(t, f.ToggleGoal(catalog.GoalTravel))
	for !f.Completed() {
		require.True(t, f.Advance())
	}
	goals := profile.Goals()
	goals[0] = "mutated"
	assert.Equal(t, []catalog.Goal{catalog.GoalTravel}, profile.FinancialGoals)
}

func TestEmittedGoalsAreUniqueCatalogLabels(t *testing.T) {
	var profile UserProfile
	f := namedFlow(t, OnComplete(func(p UserProfile) { profile = p }))
	sequence := []catalog.Goal{
		catalog.GoalTravel, catalog.GoalInheritance, catalog.GoalTravel,
		catalog.GoalTravel, catalog.GoalMaximizeSavings, catalog.GoalInheritance,
	}
	for _, g := range sequence {
		require.NoError(t, f.ToggleGoal(g))
	}
	for !f.Completed() {
		require.True(t, f.Advance())
	}
	seen := map[catalog.Goal]bool{}
	for _, g := range profile.FinancialGoals {
		assert.True(t, g.Known(), "goal %q outside catalog", g)
		assert.False(t, seen[g], "duplicate goal %q", g)
		seen[g] = true
	}
	assert.Equal(t, []catalog.Goal{catalog.GoalMaximizeSavings, catalog.GoalTravel}, profile.FinancialGoals)
}

func TestWithInitialFormSanitizesSeed(t *testing.T) {
	seed := DefaultForm()
	seed.RiskTolerance = "unknown"
	seed.FinancialGoals = []catalog.Goal{catalog.GoalTravel, "bogus", catalog.GoalSteadyIncome, catalog.GoalTravel}
	f := New(WithInitialForm(seed))
	form := f.Form()
	assert.Equal(t, catalog.DefaultRisk, form.RiskTolerance)
	assert.Equal(t, []catalog.Goal{catalog.GoalSteadyIncome, catalog.GoalTravel}, form.FinancialGoals)
}

func TestSnapshotProjectsFromCurrentForm(t *testing.T) {
	f := New(WithID("flow-1"))
	snap := f.Snapshot()
	assert.Equal(t, "flow-1", snap.FlowID)
	assert.True(t, snap.Projection.Equal(decimal.NewFromInt(274700)))
	assert.Equal(t, 35, snap.YearsToRetirement)
	assert.Equal(t, 25, snap.Percent)
	assert.Equal(t, TotalSteps, snap.TotalSteps)
	assert.False(t, snap.CanAdvance)
	assert.False(t, snap.CanRetreat)

	require.NoError(t, f.SetField(FieldRetirementAge, "30"))
	snap = f.Snapshot()
	assert.True(t, snap.Projection.Equal(decimal.NewFromInt(50000)))
	assert.Zero(t, snap.YearsToRetirement)
}

func TestRecorderReceivesTransitions(t *testing.T) {
	journal := &recordingJournal{}
	f := New(WithID("abc"), WithRecorder(journal))
	f.Advance()
	require.NoError(t, f.SetField(FieldName, "Ada"))
	f.Advance()
	require.Len(t, journal.lines, 3)
	assert.Equal(t, "flow abc · flow started on step 1", journal.lines[0])
	assert.Equal(t, "flow abc · advance blocked on step 1", journal.lines[1])
	assert.Equal(t, "flow abc · advanced to step 2", journal.lines[2])
}

func TestScopedRecorderGetsFinalID(t *testing.T) {
	journal := &recordingJournal{}
	var scopedTo []string
	f := New(
		WithScopedRecorder(func(flowID string) Recorder {
			scopedTo = append(scopedTo, flowID)
			return journal
		}),
		WithID("abc"),
	)
	require.NoError(t, f.SetField(FieldName, "Ada"))
	f.Advance()

	assert.Equal(t, []string{"abc"}, scopedTo)
	assert.Equal(t, []string{"flow started on step 1", "advanced to step 2"}, journal.lines)
}

func TestLastRecorderOptionWins(t *testing.T) {
	plain := &recordingJournal{}
	scopeCalled := false
	New(
		WithScopedRecorder(func(string) Recorder {
			scopeCalled = true
			return &recordingJournal{}
		}),
		WithRecorder(plain),
		WithID("abc"),
	)
	assert.False(t, scopeCalled)
	assert.Equal(t, []string{"flow abc · flow started on step 1"}, plain.lines)
}

func TestStepPresentation(t *testing.T) {
	assert.Equal(t, []int{25, 50, 75, 100},
		[]int{StepIdentity.Percent(), StepFinances.Percent(), StepRisk.Percent(), StepGoals.Percent()})
	assert.Equal(t, "Next", StepRisk.NextLabel())
	assert.Equal(t, "Complete Setup", StepGoals.NextLabel())
	assert.Equal(t, "Financial Goals", StepGoals.Title())
}
