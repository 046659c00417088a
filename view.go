package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	frameMarginX = 2
	frameMarginY = 1
	defaultWidth = 64
	minListWidth = 24
	listLabel    = " Groups "
	itemPrefix   = "  ▸ "
)

// frame is everything the renderer needs for one draw. It is built fresh
// from the picker on every View call.
type frame struct {
	Title      string
	GroupNames []string
	Selected   int
	Footer     string
}

func renderFrame(f frame, width, height int) string {
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - 2*frameMarginX
	if inner < minListWidth {
		inner = minListWidth
	}

	title := lipgloss.PlaceHorizontal(inner, lipgloss.Center, titleStyle.Render(f.Title))
	footer := lipgloss.PlaceHorizontal(inner, lipgloss.Center, footerStyle.Render(f.Footer))

	rows := len(f.GroupNames)
	if height > 0 {
		// title, footer, two spacer lines, the list's top and bottom border.
		available := height - 2*frameMarginY - 6
		if available < 1 {
			available = 1
		}
		rows = available
	}
	list := renderList(f.GroupNames, f.Selected, inner, rows)

	body := lipgloss.JoinVertical(lipgloss.Left, title, "", list, "", footer)
	return lipgloss.NewStyle().Margin(frameMarginY, frameMarginX).Render(body)
}

func renderList(names []string, selected, width, rows int) string {
	content := width - 2 - listStyle.GetHorizontalPadding()
	if content < 1 {
		content = 1
	}

	start, end := visibleRange(len(names), selected, rows)
	lines := make([]string, 0, rows)
	for i := start; i < end; i++ {
		line := fitWidth(itemPrefix+names[i], content)
		if i == selected {
			lines = append(lines, selectedStyle.Width(content).Render(line))
		} else {
			lines = append(lines, itemStyle.Width(content).Render(line))
		}
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	box := listStyle.
		BorderTop(false).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, listTop(width), box)
}

// listTop draws the rounded top border with the label set into it, since
// lipgloss has no border titles.
func listTop(width int) string {
	border := lipgloss.RoundedBorder()
	fill := width - 2 - 1 - lipgloss.Width(listLabel)
	if fill < 0 {
		fill = 0
	}
	line := border.TopLeft + border.Top + listLabel + strings.Repeat(border.Top, fill) + border.TopRight
	return listTitle.Render(line)
}

// visibleRange keeps the selected row on screen when there are more names
// than rows.
func visibleRange(count, selected, rows int) (int, int) {
	if rows <= 0 || count <= rows {
		return 0, count
	}
	start := selected - rows + 1
	if start < 0 {
		start = 0
	}
	return start, start + rows
}

func fitWidth(line string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(line) <= width {
		return line
	}
	runes := []rune(line)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
