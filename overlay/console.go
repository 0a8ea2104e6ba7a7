package overlay

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// DefaultConsoleLines is the number of lines a console keeps by default.
const DefaultConsoleLines = 32

// Console is a scrollback of text lines. The first pinned lines never scroll out.
type Console struct {
	pinned   int
	maxLines int
	lines    []string
}

// NewConsole creates a console that keeps at most maxLines lines after the
// pinned ones.
func NewConsole(maxLines int, pinned ...string) Console {
	if maxLines <= 0 {
		maxLines = DefaultConsoleLines
	}
	lines := make([]string, len(pinned), len(pinned)+maxLines)
	copy(lines, pinned)
	return Console{
		pinned:   len(pinned),
		maxLines: maxLines,
		lines:    lines,
	}
}

// Write appends a line, dropping the oldest unpinned line when full.
func (c *Console) Write(line string) {
	if c.maxLines <= 0 {
		c.maxLines = DefaultConsoleLines
	}
	if len(c.lines)-c.pinned >= c.maxLines {
		copy(c.lines[c.pinned:], c.lines[c.pinned+1:])
		c.lines = c.lines[:len(c.lines)-1]
	}
	c.lines = append(c.lines, line)
}

// Lines returns a copy of the current lines.
func (c *Console) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

// ConsoleWindow returns an item that draws the console in the top-left corner.
func ConsoleWindow(console *Console) Item {
	return Item{
		Name: "Console",
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(260, 220), imgui.CondOnce)

			if !imgui.BeginV("Console", nil, imgui.WindowFlagsNone) {
				imgui.End()
				return
			}
			for _, line := range console.lines {
				imgui.Text(line)
			}
			imgui.End()
		},
	}
}
