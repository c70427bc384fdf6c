package main

import (
	"fmt"
	"vitrine/internal/deeplink"
)

type ShareCmd struct {
	ID     int    `arg:"" help:"Piece id"`
	Base   string `help:"Base URL the fragment is appended to (overrides config)"`
	Copy   bool   `help:"Copy the link to the clipboard"`
	Social bool   `short:"s" help:"Also print Twitter and Facebook share links"`
}

func (cmd *ShareCmd) Run(g *Globals) error {
	it, err := findItem(g, cmd.ID)
	if err != nil {
		return err
	}

	base := g.ShareBase
	if cmd.Base != "" {
		base = cmd.Base
	}
	link := deeplink.ShareURL(base, it.ID)

	fmt.Fprintln(g.Out, link)
	if cmd.Social {
		fmt.Fprintln(g.Out, deeplink.ShareText(it))
		fmt.Fprintf(g.Out, "Twitter:  %s\n", deeplink.TwitterIntentURL(base, it))
		fmt.Fprintf(g.Out, "Facebook: %s\n", deeplink.FacebookShareURL(base, it.ID))
	}

	if cmd.Copy {
		if g.Copy == nil {
			return fmt.Errorf("clipboard is not available")
		}
		if err := g.Copy(link); err != nil {
			return fmt.Errorf("failed to copy link: %w", err)
		}
		fmt.Fprintln(g.Out, "Copied!")
	}
	return nil
}
