package notifier

import (
	"ScalpRadar/internal/alert"
	"ScalpRadar/internal/model"
)

// Notifier delivers scan reports and fired alerts.
type Notifier interface {
	SendScanReport(signals []*model.ScalpSignal) error
	SendAlert(a alert.Alert) error
}

// NoopNotifier discards everything. Useful for tests and dry runs.
type NoopNotifier struct{}

func (NoopNotifier) SendScanReport(_ []*model.ScalpSignal) error { return nil }
func (NoopNotifier) SendAlert(_ alert.Alert) error               { return nil }
