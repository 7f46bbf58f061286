// Package render draws a chart as text boxes for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"svw.info/phitinh/internal/domain"
)

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(14).
			Align(lipgloss.Center)
	facingCellStyle = cellStyle.
			BorderForeground(lipgloss.Color("#E0A526"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D9534F"))
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	centerLabel = "Trung cung"
)

// Chart renders the primary board, and the alternate one when present.
func Chart(res domain.BoardResult) string {
	var b strings.Builder
	p := res.Period
	b.WriteString(titleStyle.Render(fmt.Sprintf("Vận %d (%d-%d)", p.Period, p.StartYear, p.EndYear)))
	b.WriteString("\n")
	b.WriteString(direction("Hướng", res.Facing))
	b.WriteString("\n")
	b.WriteString(direction("Tọa", res.Sitting))
	b.WriteString("\n")
	if res.Warning != "" {
		b.WriteString(warnStyle.Render(res.Warning))
		b.WriteString("\n")
	}
	b.WriteString(Grid(res.Boards, res.Cells, res.Facing.Mountain.Octant))
	b.WriteString("\n")
	if res.Gate != nil {
		b.WriteString("Thành môn: " + res.Gate.Note + "\n")
	} else {
		b.WriteString(mutedStyle.Render("Không có thành môn") + "\n")
	}
	if alt := res.Alternate; alt != nil {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Tinh bàn thay thế"))
		b.WriteString("\n")
		b.WriteString(direction("Hướng", alt.Facing))
		b.WriteString("\n")
		b.WriteString(direction("Tọa", alt.Sitting))
		b.WriteString("\n")
		b.WriteString(Grid(alt.Boards, alt.Cells, alt.Facing.Mountain.Octant))
		b.WriteString("\n")
	}
	return b.String()
}

func direction(name string, d domain.DirectionInfo) string {
	return fmt.Sprintf("%s: %s (%.2f°, %s, lệch %.2f°)", name, d.Mountain.Label, d.Degrees, d.Kind, d.Delta)
}

// Grid draws the nine palaces, north on top. Each box shows the sitting and
// facing stars over the period star.
func Grid(set domain.BoardSet, cells []domain.CellMeta, facing domain.Octant) string {
	boxes := [3][3]string{}
	for _, c := range cells {
		style := cellStyle
		if c.Key == facing {
			style = facingCellStyle
		}
		body := fmt.Sprintf("%s\n%d   %d\n%d", c.Label, c.Son, c.Huong, c.Van)
		if c.Pattern != "" {
			body += "\n" + mutedStyle.Render(shorten(c.Pattern, 12))
		}
		boxes[c.Coord.Row][c.Coord.Col] = style.Render(body)
	}
	boxes[1][1] = cellStyle.Render(fmt.Sprintf("%s\n%d   %d\n%d", centerLabel, set.Son[1][1], set.Huong[1][1], set.Van[1][1]))

	rows := make([]string, 0, 3)
	for r := 0; r < 3; r++ {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes[r][0], boxes[r][1], boxes[r][2]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// shorten cuts s to n runes, marking the cut.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
