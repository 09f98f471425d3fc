package display

import (
	"time"

	"wearable_display/internal/models"
)

var widgetIntervals = map[models.Widget]time.Duration{
	models.WidgetTime:     1000 * time.Millisecond,
	models.WidgetBattery:  5000 * time.Millisecond,
	models.WidgetTemp:     2000 * time.Millisecond,
	models.WidgetTrends:   3000 * time.Millisecond,
	models.WidgetToday:    1000 * time.Millisecond,
	models.WidgetSettings: 1000 * time.Millisecond,
}

var screenWidgets = map[models.ScreenID][]models.Widget{
	models.ScreenHome:        {models.WidgetTime, models.WidgetBattery},
	models.ScreenHR:          {models.WidgetTrends},
	models.ScreenSpO2:        {models.WidgetTrends},
	models.ScreenTemp:        {models.WidgetTemp},
	models.ScreenToday:       {models.WidgetToday},
	models.ScreenSplSettings: {models.WidgetSettings, models.WidgetBattery},
}

// refreshSchedule remembers when each widget was last redrawn.
// Owned by the tick loop.
type refreshSchedule struct {
	last map[models.Widget]time.Time
}

func newRefreshSchedule() *refreshSchedule {
	return &refreshSchedule{last: make(map[models.Widget]time.Time, len(widgetIntervals))}
}

// due returns the widgets of screen whose interval has elapsed and marks them updated.
func (r *refreshSchedule) due(screen models.ScreenID, now time.Time) []models.Widget {
	var out []models.Widget
	for _, w := range screenWidgets[screen] {
		last, ok := r.last[w]
		if ok && now.Sub(last) < widgetIntervals[w] {
			continue
		}
		r.last[w] = now
		out = append(out, w)
	}
	return out
}

// resetAll forces every widget to redraw on the next tick.
func (r *refreshSchedule) resetAll() {
	clear(r.last)
}
