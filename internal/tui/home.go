package tui

import (
	"github.com/charmbracelet/lipgloss"
)

type homeView struct {
	keys homeKeys
}

func newHomeView() homeView {
	return homeView{keys: newHomeKeys()}
}

func (h homeView) view() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render("You are on the home screen!"),
		"",
		bodyStyle.Render("Only for super secret signed in users only!"),
		"",
		buttonFocusStyle.Render("Sign Out"),
	)
	return cardStyle.Render(body)
}
