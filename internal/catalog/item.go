package catalog

import (
	"fmt"
	"slices"
	"strings"
)

type Notes struct {
	Top   []string `yaml:"top"`
	Heart []string `yaml:"heart"`
	Base  []string `yaml:"base"`
}

// All returns the notes of every tier in top, heart, base order.
func (n Notes) All() []string {
	all := make([]string, 0, len(n.Top)+len(n.Heart)+len(n.Base))
	all = append(all, n.Top...)
	all = append(all, n.Heart...)
	return append(all, n.Base...)
}

type Item struct {
	ID         int      `yaml:"id"`
	Name       string   `yaml:"name"`
	Designer   string   `yaml:"designer"`
	ImageURL   string   `yaml:"image_url"`
	Year       int      `yaml:"year"`
	Notes      Notes    `yaml:"notes"`
	Story      string   `yaml:"story"`
	Categories []string `yaml:"categories,omitempty"`
}

func (it Item) HasCategory(name string) bool {
	return slices.Contains(it.Categories, name)
}

func (it Item) Validate() error {
	if it.ID <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidID, it.ID)
	}
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("%w: item %d", ErrEmptyName, it.ID)
	}
	return nil
}

func (it Item) clone() Item {
	c := it
	c.Notes = Notes{
		Top:   slices.Clone(it.Notes.Top),
		Heart: slices.Clone(it.Notes.Heart),
		Base:  slices.Clone(it.Notes.Base),
	}
	c.Categories = slices.Clone(it.Categories)
	return c
}
