package notifier

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"ScalpRadar/internal/alert"
	"ScalpRadar/internal/model"
)

const (
	ansiReset  = "\033[0m"
	ansiGreen  = "\033[32m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
)

// ConsoleNotifier writes reports and alerts to a terminal, with color when
// the destination is a TTY.
type ConsoleNotifier struct {
	Out   io.Writer
	color bool
}

// NewConsoleNotifier targets stdout and detects TTY support.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{
		Out:   os.Stdout,
		color: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

func (c *ConsoleNotifier) SendScanReport(signals []*model.ScalpSignal) error {
	_, err := fmt.Fprint(c.Out, FormatScanReport(signals))
	return err
}

func (c *ConsoleNotifier) SendAlert(a alert.Alert) error {
	text := FormatAlert(a)
	if c.color {
		switch a.Signal.Bias {
		case model.BiasLong:
			text = ansiGreen + text + ansiReset
		case model.BiasShort:
			text = ansiRed + text + ansiReset
		default:
			text = ansiYellow + text + ansiReset
		}
	}
	_, err := fmt.Fprint(c.Out, text)
	return err
}
