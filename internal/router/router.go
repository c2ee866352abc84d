// Package router decides which top-level screen is visible. State is a plain
// value: callers pass the current State in and keep the one returned.
package router

import (
	"strings"

	"github.com/kingrea/retireplan/internal/onboarding"
)

// View names a top-level screen.
type View string

const (
	ViewOnboarding View = "onboarding"
	ViewDashboard  View = "dashboard"
	ViewChat       View = "chat"
	ViewEducation  View = "education"
)

var views = []View{ViewOnboarding, ViewDashboard, ViewChat, ViewEducation}

// Views lists every screen in header order.
func Views() []View {
	out := make([]View, len(views))
	copy(out, views)
	return out
}

// Title is the header label for v.
func (v View) Title() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewChat:
		return "Advisor Chat"
	case ViewEducation:
		return "Learn"
	default:
		return "Get Started"
	}
}

// NeedsProfile reports whether v renders profile data.
func (v View) NeedsProfile() bool {
	return v == ViewDashboard || v == ViewChat
}

// ParseView maps a name to a View; anything unknown becomes ViewOnboarding.
func ParseView(name string) View {
	candidate := View(strings.ToLower(strings.TrimSpace(name)))
	for _, v := range views {
		if v == candidate {
			return v
		}
	}
	return ViewOnboarding
}

// State is the application-level routing value.
type State struct {
	View    View
	Profile *onboarding.UserProfile
}

// Initial is the state on launch: onboarding with no profile.
func Initial() State {
	return State{View: ViewOnboarding}
}

// HasProfile reports whether onboarding has completed.
func (s State) HasProfile() bool {
	return s.Profile != nil
}

// Complete stores the finished profile and moves to the dashboard.
func Complete(s State, profile onboarding.UserProfile) State {
	p := profile
	p.FinancialGoals = profile.Goals()
	return State{View: ViewDashboard, Profile: &p}
}

// Navigate switches to v. Screens that render profile data stay unreachable
// until a profile exists, and an unknown view falls back to onboarding.
func Navigate(s State, v View) State {
	target := ParseView(string(v))
	if target.NeedsProfile() && !s.HasProfile() {
		return s
	}
	s.View = target
	return s
}
