package tui

import "github.com/charmbracelet/bubbles/key"

// wizardKeys are active while onboarding. Letters are left to the text inputs.
type wizardKeys struct {
	Next     key.Binding
	Back     key.Binding
	NextItem key.Binding
	PrevItem key.Binding
	Toggle   key.Binding
	Quit     key.Binding
}

func newWizardKeys() wizardKeys {
	return wizardKeys{
		Next:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "previous")),
		NextItem: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		PrevItem: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev field")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle goal")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k wizardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back, k.NextItem, k.PrevItem, k.Toggle, k.Quit}
}

func (k wizardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// screenKeys are active on the screens that consume the finished profile.
type screenKeys struct {
	Dashboard  key.Binding
	Chat       key.Binding
	Education  key.Binding
	Onboarding key.Binding
	Theme      key.Binding
	Quit       key.Binding
}

func newScreenKeys() screenKeys {
	return screenKeys{
		Dashboard:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
		Chat:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "advisor chat")),
		Education:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "learn")),
		Onboarding: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "redo onboarding")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k screenKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Dashboard, k.Chat, k.Education, k.Onboarding, k.Theme, k.Quit}
}

func (k screenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
