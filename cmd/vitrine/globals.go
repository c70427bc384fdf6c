package main

import (
	"io"
	"vitrine/cmd/vitrine/render"
	"vitrine/internal/app"
)

type Globals struct {
	App       *app.Controller
	Out       io.Writer
	Render    render.Renderer
	ShareBase string
	Copy      func(string) error
}
