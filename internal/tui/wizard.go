// internal/tui/wizard.go
//
// The onboarding wizard screen. It turns key presses into calls on an
// onboarding.Flow and renders the flow's Snapshot. The wizard owns no
// onboarding state of its own beyond input text and cursor positions.

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/retireplan/internal/catalog"
	"github.com/kingrea/retireplan/internal/onboarding"
	"github.com/kingrea/retireplan/internal/projection"
)

// fieldInput binds a text input to one WorkingForm field.
type fieldInput struct {
	field  onboarding.Field
	label  string
	prefix string
	input  textinput.Model
}

var stepFields = map[onboarding.Step][]onboarding.Field{
	onboarding.StepIdentity: {onboarding.FieldName, onboarding.FieldAge, onboarding.FieldRetirementAge},
	onboarding.StepFinances: {onboarding.FieldCurrentSuper, onboarding.FieldMonthlyContribution},
}

var fieldLabels = map[onboarding.Field]string{
	onboarding.FieldName:                "Full Name",
	onboarding.FieldAge:                 "Current Age",
	onboarding.FieldRetirementAge:       "Planned Retirement Age",
	onboarding.FieldCurrentSuper:        "Current Superannuation Balance",
	onboarding.FieldMonthlyContribution: "Monthly Contribution",
}

type wizardView struct {
	flow     *onboarding.Flow
	styles   Styles
	keys     wizardKeys
	help     help.Model
	progress progress.Model

	inputs   map[onboarding.Field]*fieldInput
	focus    int
	riskIdx  int
	goalIdx  int
	warnings map[onboarding.Field]string

	width int
}

func newWizardView(flow *onboarding.Flow, styles Styles) *wizardView {
	w := &wizardView{
		flow:     flow,
		styles:   styles,
		keys:     newWizardKeys(),
		help:     help.New(),
		progress: progress.New(progress.WithGradient("#2563EB", "#16A34A"), progress.WithoutPercentage()),
		inputs:   map[onboarding.Field]*fieldInput{},
		warnings: map[onboarding.Field]string{},
	}
	form := flow.Form()
	for _, fields := range stepFields {
		for _, field := range fields {
			ti := textinput.New()
			ti.Prompt = "│ "
			ti.CharLimit = 64
			ti.Width = 32
			ti.Cursor.SetMode(cursor.CursorStatic)
			ti.SetValue(form.FieldText(field))
			if field == onboarding.FieldName {
				ti.Placeholder = "Enter your name"
			}
			fi := &fieldInput{field: field, label: fieldLabels[field], input: ti}
			if field == onboarding.FieldCurrentSuper || field == onboarding.FieldMonthlyContribution {
				fi.prefix = "$"
			}
			w.inputs[field] = fi
		}
	}
	if idx := catalog.RiskIndex(form.RiskTolerance); idx >= 0 {
		w.riskIdx = idx
	}
	w.focusStep()
	return w
}

func (w *wizardView) setWidth(width int) {
	w.width = width
	w.progress.Width = max(10, width-4)
	w.help.Width = width
}

// Update routes a message to the flow. Completion is reported through the
// flow's own callback, so the only commands returned are input bookkeeping.
func (w *wizardView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w.updateFocusedInput(msg)
	}
	step := w.flow.Step()
	switch {
	case key.Matches(keyMsg, w.keys.Next):
		return w.advance()
	case key.Matches(keyMsg, w.keys.Back):
		if w.flow.Retreat() {
			w.focusStep()
		}
		return nil
	case key.Matches(keyMsg, w.keys.NextItem):
		w.moveCursor(1)
		return nil
	case key.Matches(keyMsg, w.keys.PrevItem):
		w.moveCursor(-1)
		return nil
	case step == onboarding.StepGoals && key.Matches(keyMsg, w.keys.Toggle):
		goals := catalog.Goals()
		_ = w.flow.ToggleGoal(goals[w.goalIdx])
		return nil
	}
	return w.updateFocusedInput(msg)
}

func (w *wizardView) advance() tea.Cmd {
	if !w.flow.Advance() {
		return nil
	}
	if !w.flow.Completed() {
		w.focusStep()
	}
	return nil
}

// moveCursor cycles focus between the inputs on text steps and through the
// options on selection steps. Moving over a risk card selects it.
func (w *wizardView) moveCursor(delta int) {
	switch step := w.flow.Step(); step {
	case onboarding.StepRisk:
		options := catalog.RiskOptions()
		w.riskIdx = wrap(w.riskIdx+delta, len(options))
		_ = w.flow.SelectRisk(options[w.riskIdx].Value)
	case onboarding.StepGoals:
		w.goalIdx = wrap(w.goalIdx+delta, len(catalog.Goals()))
	default:
		fields := stepFields[step]
		if len(fields) == 0 {
			return
		}
		w.focus = wrap(w.focus+delta, len(fields))
		w.applyFocus()
	}
}

func (w *wizardView) focusStep() {
	w.focus = 0
	if w.flow.Step() == onboarding.StepRisk {
		if idx := catalog.RiskIndex(w.flow.Form().RiskTolerance); idx >= 0 {
			w.riskIdx = idx
		}
	}
	w.applyFocus()
}

func (w *wizardView) applyFocus() {
	for _, fi := range w.inputs {
		fi.input.Blur()
	}
	if fi := w.focusedInput(); fi != nil {
		fi.input.Focus()
	}
}

func (w *wizardView) focusedInput() *fieldInput {
	fields := stepFields[w.flow.Step()]
	if w.focus < 0 || w.focus >= len(fields) {
		return nil
	}
	return w.inputs[fields[w.focus]]
}

// updateFocusedInput forwards the message to the focused text input and copies
// any change into the flow. Numbers that do not parse are kept as typed and
// flagged; the flow keeps its last valid value.
func (w *wizardView) updateFocusedInput(msg tea.Msg) tea.Cmd {
	fi := w.focusedInput()
	if fi == nil || w.flow.Completed() {
		return nil
	}
	before := fi.input.Value()
	var cmd tea.Cmd
	fi.input, cmd = fi.input.Update(msg)
	if after := fi.input.Value(); after != before {
		w.commit(fi.field, after)
	}
	return cmd
}

func (w *wizardView) commit(field onboarding.Field, raw string) {
	err := w.flow.SetField(field, raw)
	switch {
	case err == nil:
		delete(w.warnings, field)
	case errors.Is(err, onboarding.ErrMalformedNumber):
		if field == onboarding.FieldCurrentSuper || field == onboarding.FieldMonthlyContribution {
			w.warnings[field] = "Enter an amount, e.g. 50000"
		} else {
			w.warnings[field] = "Enter a whole number"
		}
	default:
		w.warnings[field] = err.Error()
	}
}

// View renders the progress header, the current step and the navigation row.
func (w *wizardView) View() string {
	snap := w.flow.Snapshot()
	progressLine := lipgloss.JoinHorizontal(lipgloss.Top,
		w.styles.Muted.Render(fmt.Sprintf("Step %d of %d", int(snap.Step), snap.TotalSteps)),
		"    ",
		w.styles.Muted.Render(fmt.Sprintf("%d%% Complete", snap.Percent)),
	)
	sections := []string{
		progressLine,
		w.progress.ViewAs(float64(snap.Percent) / 100),
		"",
		w.styles.Title.Render(snap.Step.Title()),
		w.styles.Subtitle.Render(snap.Step.Subtitle()),
		w.renderStep(snap),
		"",
		w.renderNav(snap),
		w.help.View(w.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (w *wizardView) renderStep(snap onboarding.Snapshot) string {
	switch snap.Step {
	case onboarding.StepIdentity:
		rows := w.renderInputs(snap.Step)
		years := fmt.Sprintf("%s  %s", w.styles.Label.Render("Years to Retirement"), w.styles.Value.Render(fmt.Sprintf("%d", snap.YearsToRetirement)))
		rows = append(rows, years)
		if snap.YearsToRetirement <= 0 {
			rows = append(rows, w.styles.Warning.Render("Retirement age is not after your current age; the projection will not grow."))
		}
		return strings.Join(rows, "\n")
	case onboarding.StepFinances:
		rows := w.renderInputs(snap.Step)
		box := w.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
			w.styles.Title.Render("Projected Retirement Balance"),
			w.styles.Projection.Render(projection.FormatCurrency(snap.Projection)),
			w.styles.Muted.Render(projection.Caption),
		))
		rows = append(rows, "", box)
		return strings.Join(rows, "\n")
	case onboarding.StepRisk:
		return w.renderRisk(snap.Form)
	case onboarding.StepGoals:
		return w.renderGoals(snap.Form)
	}
	return ""
}

func (w *wizardView) renderInputs(step onboarding.Step) []string {
	var rows []string
	for i, field := range stepFields[step] {
		fi := w.inputs[field]
		label := w.styles.Label.Render(fi.label)
		if i == w.focus {
			label = w.styles.FocusPrompt.Render("› " + fi.label)
		}
		line := fi.input.View()
		if fi.prefix != "" {
			line = w.styles.Muted.Render(fi.prefix) + " " + line
		}
		rows = append(rows, label, line)
		if warn, ok := w.warnings[field]; ok {
			rows = append(rows, w.styles.Warning.Render("⚠ "+warn))
		}
	}
	return rows
}

func (w *wizardView) renderRisk(form onboarding.WorkingForm) string {
	var cards []string
	for _, opt := range catalog.RiskOptions() {
		body := fmt.Sprintf("%s\n%s", opt.Label, w.styles.Muted.Render(opt.Description))
		style := w.styles.Card
		if opt.Value == form.RiskTolerance {
			style = w.styles.ActiveCard
			body = "● " + body
		}
		cards = append(cards, style.Width(max(24, w.width/2-4)).Render(body))
	}
	return strings.Join(cards, "\n")
}

func (w *wizardView) renderGoals(form onboarding.WorkingForm) string {
	var rows []string
	for i, goal := range catalog.Goals() {
		mark := "[ ]"
		style := w.styles.Card
		if form.HasGoal(goal) {
			mark = "[x]"
			style = w.styles.GoalCard
		}
		line := fmt.Sprintf("%s %s", mark, goal)
		if i == w.goalIdx {
			line = w.styles.FocusPrompt.Render("› ") + line
		}
		rows = append(rows, style.Width(max(24, w.width/2-4)).Render(line))
	}
	return strings.Join(rows, "\n")
}

func (w *wizardView) renderNav(snap onboarding.Snapshot) string {
	next := snap.Step.NextLabel() + " →"
	nextBtn := w.styles.ButtonOff.Render(next)
	if snap.CanAdvance {
		nextBtn = w.styles.Button.Render(next)
	}
	if !snap.CanRetreat {
		return nextBtn
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, w.styles.ButtonOff.Render("← Previous"), "  ", nextBtn)
}

func wrap(idx, n int) int {
	if n == 0 {
		return 0
	}
	return ((idx % n) + n) % n
}
