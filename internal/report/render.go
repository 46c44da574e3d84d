package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/postflop/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	redCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	blackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// RenderSummary renders the spot and solve results.
func RenderSummary(r *Report) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s", strings.ToUpper(r.Spot.Street), renderBoard(r.Spot.Board))))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d  %s %d  %s %s, %s\n",
		labelStyle.Render("pot"), r.Spot.Pot,
		labelStyle.Render("stack"), r.Spot.Stack,
		labelStyle.Render("texture"), r.Spot.Texture, r.Spot.Suits)
	fmt.Fprintf(&b, "%s %d  %s %.3f (%.2f%% of pot)\n",
		labelStyle.Render("iterations"), r.Solve.Iterations,
		labelStyle.Render("exploitability"), r.Solve.Exploitability, r.Solve.ExploitabilityPct)

	rows := make([][]string, 0, len(r.Players))
	for _, p := range r.Players {
		rows = append(rows, []string{p.Position, fmt.Sprint(p.Combos), fmt.Sprintf("%.3f", p.EV), fmt.Sprintf("%.3f", p.BestResponse)})
	}
	b.WriteString(newTable([]string{"player", "combos", "ev", "best response"}, rows))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("run " + r.Solve.RunID))
	return b.String()
}

// RenderNode renders a node's strategy by category and, when present, by
// hand.
func RenderNode(n Node) string {
	var b strings.Builder
	title := fmt.Sprintf("#%d %s to act after %s (pot %d)", n.Index, n.Player, n.Line, n.Pot)
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	headers := append([]string{"", "combos"}, n.Actions...)
	rows := [][]string{append([]string{"overall", ""}, percents(n.Frequencies)...)}
	for _, c := range n.Categories {
		rows = append(rows, append([]string{c.Name, fmt.Sprintf("%.1f", c.Combos)}, percents(c.Frequencies)...))
	}
	b.WriteString(newTable(headers, rows))

	if len(n.Hands) > 0 {
		rows = rows[:0]
		for _, h := range n.Hands {
			rows = append(rows, append([]string{renderBoard(h.Hand), fmt.Sprintf("%.2f", h.Reach)}, percents(h.Frequencies)...))
		}
		b.WriteString("\n")
		b.WriteString(newTable(append([]string{"hand", "reach"}, n.Actions...), rows))
	}
	return b.String()
}

// RenderTree renders one line per node.
func RenderTree(r *Report) string {
	var b strings.Builder
	for _, n := range r.Nodes {
		depth := 0
		if n.Line != "root" {
			depth = strings.Count(n.Line, ",") + 1
		}
		parts := make([]string, len(n.Actions))
		for a, name := range n.Actions {
			parts[a] = fmt.Sprintf("%s %.0f%%", name, 100*n.Frequencies[a])
		}
		fmt.Fprintf(&b, "%s%s %s: %s\n",
			strings.Repeat("  ", depth),
			infoStyle.Render(fmt.Sprintf("#%d", n.Index)),
			labelStyle.Render(n.Player),
			strings.Join(parts, ", "))
	}
	return b.String()
}

func newTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return cellStyle.Bold(true)
			}
			return cellStyle
		}).
		String()
}

func percents(freqs []float64) []string {
	out := make([]string, len(freqs))
	for i, f := range freqs {
		out[i] = fmt.Sprintf("%.1f%%", 100*f)
	}
	return out
}

// renderBoard colours cards by suit.
func renderBoard(cards string) string {
	parsed, err := poker.ParseCards(cards)
	if err != nil {
		return cards
	}
	parts := make([]string, len(parsed))
	for i, c := range parsed {
		style := blackCardStyle
		if s := c.Suit(); s == poker.Hearts || s == poker.Diamonds {
			style = redCardStyle
		}
		parts[i] = style.Render(c.String())
	}
	return strings.Join(parts, " ")
}
