// Package report renders progress aggregates for the terminal and
// exports them as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mkoehler/sprechzeit/internal/progress"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#38BDF8"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBBF24"))

	recStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22C55E")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(0, 1)
)

// Render formats per-mode stats and the recommendation for the terminal.
func Render(stats []progress.ModeStats, rec *progress.Recommendation) string {
	if len(stats) == 0 {
		return labelStyle.Render("Noch keine Aufnahmen. Starte mit: sprechzeit speak")
	}

	var b strings.Builder
	for _, s := range stats {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d Aufnahmen)", s.Mode, s.Count)) + "\n")
		b.WriteString(row("Wörter (Median)", fmt.Sprintf("%.0f", s.MedianWordCount)))
		b.WriteString(row("Wortvielfalt (Median)", fmt.Sprintf("%.2f", s.MedianUniqueRatio)))
		if s.MedianWPM > 0 {
			b.WriteString(row("Wörter/Minute (Median)", fmt.Sprintf("%.0f", s.MedianWPM)))
		}
		if s.LowQualityRate != nil {
			b.WriteString(row("Qualitätsprobleme", percent(*s.LowQualityRate)))
		}
		if s.ASREmptyRate != nil {
			b.WriteString(row("Leere Aufnahmen", percent(*s.ASREmptyRate)))
		}
		if s.Q3CausalRate != nil {
			b.WriteString(row("Begründungen (weil/deshalb)", percent(*s.Q3CausalRate)))
		}
		for _, note := range s.Notes {
			b.WriteString("  " + noteStyle.Render("! "+note) + "\n")
		}
		b.WriteString("\n")
	}

	if rec != nil {
		b.WriteString(recStyle.Render(fmt.Sprintf("Empfehlung (%s): %s", rec.Mode, rec.Message)) + "\n")
	}

	return b.String()
}

func row(label, value string) string {
	return fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-28s", label)),
		valueStyle.Render(value))
}

func percent(rate float64) string {
	return fmt.Sprintf("%.0f %%", rate*100)
}

// WriteCSV exports per-mode stats with one row per mode. Absent rates
// are empty cells, not zeros.
func WriteCSV(w io.Writer, stats []progress.ModeStats) error {
	cw := csv.NewWriter(w)
	header := []string{
		"mode", "count", "median_word_count", "median_unique_ratio",
		"median_wpm", "low_quality_rate", "asr_empty_rate", "q3_causal_rate",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, s := range stats {
		rec := []string{
			s.Mode,
			strconv.Itoa(s.Count),
			formatFloat(s.MedianWordCount),
			formatFloat(s.MedianUniqueRatio),
			formatFloat(s.MedianWPM),
			formatRate(s.LowQualityRate),
			formatRate(s.ASREmptyRate),
			formatRate(s.Q3CausalRate),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row for %s: %w", s.Mode, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func formatRate(r *float64) string {
	if r == nil {
		return ""
	}
	return formatFloat(*r)
}
