package main

import (
	"fmt"
	"vitrine/internal/deeplink"
	"vitrine/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

type BrowseCmd struct {
	Item int    `short:"i" help:"Open this piece once the browser starts"`
	Link string `help:"Share link or fragment to open on start"`
}

func (cmd *BrowseCmd) Run(g *Globals) error {
	switch {
	case cmd.Link != "":
		g.App.Location().SetFragment(fragmentOf(cmd.Link))
	case cmd.Item != 0:
		g.App.Location().SetFragment(deeplink.Encode(cmd.Item))
	}

	browser := ui.NewBrowser(g.App, ui.BrowserOptions{
		ShareBaseURL: g.ShareBase,
		Copy:         g.Copy,
	})

	p := tea.NewProgram(browser, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
