package notifier

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"ScalpRadar/internal/alert"
	"ScalpRadar/internal/model"
)

// FormatScanReport renders one sweep's results as a console table.
func FormatScanReport(signals []*model.ScalpSignal) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== Scan report | %s ===\n", time.Now().Format("2006-01-02 15:04:05")))
	if len(signals) == 0 {
		b.WriteString("(no symbols scanned)\n")
		return b.String()
	}

	for _, s := range signals {
		b.WriteString(formatSignalLine(s))
		b.WriteByte('\n')
	}

	actionable := 0
	for _, s := range signals {
		if s.Actionable() {
			actionable++
		}
	}
	b.WriteString(fmt.Sprintf("--- %d symbols, %d actionable ---\n", len(signals), actionable))
	return b.String()
}

func formatSignalLine(s *model.ScalpSignal) string {
	price := "n/a"
	if !math.IsNaN(s.LastPrice) {
		price = humanize.CommafWithDigits(s.LastPrice, 2)
	}
	line := fmt.Sprintf("%-6s %-7s %3d  @%-10s [%s]  %s",
		s.Symbol, s.Bias, s.Score, price, s.Session, s.Reason)
	if s.Levels != nil {
		line += fmt.Sprintf("\n       entry %s | stop %s | 1R %s | 2R %s",
			humanize.CommafWithDigits(s.Levels.Entry, 2),
			humanize.CommafWithDigits(s.Levels.Stop, 2),
			humanize.CommafWithDigits(s.Levels.Target1R, 2),
			humanize.CommafWithDigits(s.Levels.Target2R, 2))
	}
	return line
}

// FormatAlert renders one fired alert for console delivery.
func FormatAlert(a alert.Alert) string {
	var b strings.Builder
	s := a.Signal
	b.WriteString(fmt.Sprintf("!! ALERT %s %s score=%d (%s)\n",
		s.Symbol, s.Bias, s.Score, humanize.RelTime(a.FiredAt, time.Now(), "ago", "from now")))
	b.WriteString(fmt.Sprintf("   %s\n", s.Reason))
	if s.Levels != nil {
		b.WriteString(fmt.Sprintf("   entry %s | stop %s | 1R %s | 2R %s\n",
			humanize.CommafWithDigits(s.Levels.Entry, 2),
			humanize.CommafWithDigits(s.Levels.Stop, 2),
			humanize.CommafWithDigits(s.Levels.Target1R, 2),
			humanize.CommafWithDigits(s.Levels.Target2R, 2)))
	}
	b.WriteString(fmt.Sprintf("   id=%s\n", a.ID))
	return b.String()
}
