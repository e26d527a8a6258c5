package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/openkraft/tokenkraft/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle           = lipgloss.NewStyle().Foreground(dim)
	faintStyle         = lipgloss.NewStyle().Foreground(faint)
	passStyle          = lipgloss.NewStyle().Foreground(success).Bold(true)
	failStyle          = lipgloss.NewStyle().Foreground(danger).Bold(true)
	errorTagStyle      = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle       = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle       = lipgloss.NewStyle().Foreground(info)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	separatorLine      = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderValidation formats one validation result: a header box, the errors,
// the combined warnings and infos, then a verdict line. The strict flag only
// changes the verdict, never what is listed.
func RenderValidation(r *domain.ValidationResult, strict bool) string {
	var b strings.Builder

	title := headerStyle.Render("tokenkraft")
	subtitle := dimStyle.Render("Validating profile")
	name := titleStyle.Render(r.Profile)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + name))
	b.WriteString("\n")

	renderFindings(&b, "Errors", r.Errors())
	renderFindings(&b, "Warnings/Info", r.Warnings())

	b.WriteString("\n  " + separatorLine + "\n\n")

	errs, warns := len(r.Errors()), len(r.Warnings())
	switch {
	case errs > 0:
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("✗ Profile has %s that must be fixed.", plural(errs, "error"))) + "\n")
	case strict && warns > 0:
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("✗ Strict mode: %s.", plural(warns, "warning"))) + "\n")
	default:
		b.WriteString("  " + passStyle.Render("✓ Profile is valid!") + "\n")
		if warns > 0 {
			b.WriteString("    " + dimStyle.Render(fmt.Sprintf("%s; consider fixing them.", plural(warns, "warning"))) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

func renderFindings(b *strings.Builder, title string, findings []domain.Finding) {
	if len(findings) == 0 {
		return
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %s\n\n",
		sectionHeaderStyle.Render(title),
		dimStyle.Render(fmt.Sprintf("(%d)", len(findings))),
	)
	for _, f := range findings {
		fmt.Fprintf(b, "    %s %s\n", severityTag(f.Severity), f.Message)
	}
}

func severityTag(sev domain.Severity) string {
	switch sev {
	case domain.SeverityError:
		return errorTagStyle.Render("ERROR")
	case domain.SeverityWarning:
		return warnTagStyle.Render("WARN ")
	default:
		return infoTagStyle.Render("INFO ")
	}
}

// RenderSummary formats a one-line-per-profile overview for multi-profile runs.
func RenderSummary(results []*domain.ValidationResult, strict bool) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Summary") + "\n")
	b.WriteString("  " + separatorLine + "\n")

	failed := 0
	for _, r := range results {
		status := r.Status(strict)
		if status == domain.StatusFail {
			failed++
		}
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			statusTag(status),
			padRight(r.Profile, 28),
			dimStyle.Render(fmt.Sprintf("%d errors, %d warnings", r.Count(domain.SeverityError), len(r.Warnings()))),
		)
	}

	b.WriteString("\n")
	if failed > 0 {
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("%d of %d profiles failed", failed, len(results))) + "\n")
	} else {
		b.WriteString("  " + passStyle.Render(fmt.Sprintf("All %d profiles passed", len(results))) + "\n")
	}
	return b.String()
}

func statusTag(status string) string {
	switch status {
	case domain.StatusFail:
		return errorTagStyle.Render("fail")
	case domain.StatusWarn:
		return warnTagStyle.Render("warn")
	default:
		return passStyle.Render("pass")
	}
}

// RenderHistory formats recorded validation runs for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No validation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Validation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	last := map[string]int{}
	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			statusTag(e.Status),
			padRight(e.Profile, 24),
			dimStyle.Render(fmt.Sprintf("%dE %dW", e.Errors, e.Warnings)),
		)

		if prev, ok := last[e.Source]; ok {
			if diff := e.Errors - prev; diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}
		last[e.Source] = e.Errors

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
