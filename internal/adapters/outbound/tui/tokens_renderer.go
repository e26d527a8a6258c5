package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/openkraft/tokenkraft/internal/domain/tokens"
)

var (
	noteSourceStyle = lipgloss.NewStyle().Foreground(fg).Bold(true)
	hintStyle       = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// WrittenFile is a generated artifact and where it ended up.
type WrittenFile struct {
	Format string
	Path   string
}

// RenderTokenSummary lists the written files and the profile's style notes.
func RenderTokenSummary(profile string, files []WrittenFile, notes []tokens.Note) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n\n", sectionHeaderStyle.Render("Generated tokens"), dimStyle.Render("from "+profile))
	for _, f := range files {
		fmt.Fprintf(&b, "    %s %s  %s\n", passStyle.Render("✓"), padRight(f.Format, 9), f.Path)
	}

	if len(notes) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %s\n\n", sectionHeaderStyle.Render("Style notes"))
		for _, n := range notes {
			fmt.Fprintf(&b, "    %s %s\n", noteSourceStyle.Render(n.Source+":"), hintStyle.Render(fmt.Sprintf("%q", n.Text)))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// ContrastLevel is one WCAG threshold and whether a ratio meets it.
type ContrastLevel struct {
	Name     string
	MinRatio float64
	Pass     bool
}

// RenderContrast shows a ratio against the WCAG thresholds.
func RenderContrast(fgHex, bgHex string, ratio float64, levels []ContrastLevel) string {
	var b strings.Builder
	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fgHex)).
		Background(lipgloss.Color(bgHex)).
		Padding(0, 2).
		Render("Aa")

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s on %s  %s\n\n",
		swatch, fgHex, bgHex, titleStyle.Render(fmt.Sprintf("%.2f:1", ratio)))
	for _, l := range levels {
		mark := failStyle.Render("✗")
		if l.Pass {
			mark = passStyle.Render("✓")
		}
		fmt.Fprintf(&b, "    %s %s %s\n", mark, padRight(l.Name, 22), dimStyle.Render(fmt.Sprintf("≥ %.1f:1", l.MinRatio)))
	}
	b.WriteString("\n")
	return b.String()
}
