package ascii

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerRows = 5

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.ASCIIBorder()).
	Padding(0, 1).
	Margin(1, 2)

// bannerLines renders the boxed title: a blank row, the box, a blank row,
// two columns of margin on each side.
func bannerLines(title string) [][]rune {
	out := bannerStyle.Render(title)
	lines := strings.Split(out, "\n")
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		r := []rune(l)
		for len(r) < width {
			r = append(r, ' ')
		}
		rows[i] = r
	}
	return rows
}

// Banner overlays the title box centered at the top of the frame. It
// reports false, leaving the frame alone, when the box does not fit.
func (f *Frame) Banner(title string) bool {
	title = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		return r
	}, title)
	if title == "" || lipgloss.Width(title) != len([]rune(title)) {
		return false
	}
	lines := bannerLines(title)
	if len(lines) != bannerRows || f.rows < bannerRows {
		return false
	}
	boxW := len(lines[0])
	if boxW > f.cols {
		return false
	}
	left := (f.cols - boxW) / 2
	// title text sits on the middle row after margin, border and padding
	textStart, textEnd := 4, 4+len([]rune(title))
	for row, line := range lines {
		for i, r := range line {
			f.set(left+i, row, Cell{
				Rune:  r,
				Title: row == bannerRows/2 && i >= textStart && i < textEnd,
			})
		}
	}
	return true
}
