package render

import "time"

type Renderer interface {
	Init() error
	Deinit() error
	AddDecoration(row, col int, content string, frames int)
	RenderLoop(framePeriod time.Duration, render func() bool)
	Fill(row, column int, message string)
}
