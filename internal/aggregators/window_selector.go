package aggregators

import (
	"time"

	"log-insights/internal/models"
)

//go:generate mockgen -source=window_selector.go -destination=./mocks/window_selector_mock.go -package=mocks
type WindowSelector interface {
	// Select returns the events whose timestamp falls within
	// [now - minutes, now], both bounds inclusive. The caller fixes now
	// once per query so results stay internally consistent.
	Select(events []*models.RequestEvent, now time.Time, minutes int) []*models.RequestEvent
}

type windowSelector struct{}

func NewWindowSelector() WindowSelector {
	return &windowSelector{}
}

func (s *windowSelector) Select(events []*models.RequestEvent, now time.Time, minutes int) []*models.RequestEvent {
	start := now.Add(-time.Duration(minutes) * time.Minute)

	selected := make([]*models.RequestEvent, 0, len(events))
	for _, event := range events {
		if event.Timestamp.Before(start) || event.Timestamp.After(now) {
			continue
		}
		selected = append(selected, event)
	}
	return selected
}
