package display

import "wearable_display/internal/models"

// Navigator is what a gesture handler may do: look at the current screen and
// move to another one. Handlers never touch the history store.
type Navigator interface {
	Current() models.ScreenID
	Navigate(nav models.NavContext)
}

// GestureHandler reacts to one gesture on the screen it is registered for.
type GestureHandler func(nav Navigator, g models.Gesture)

// GestureTable maps a screen to its handler. Screens without an entry ignore gestures.
type GestureTable map[models.ScreenID]GestureHandler

// Carousel is the left/right swipe order of the main screens.
var Carousel = []models.ScreenID{
	models.ScreenHome,
	models.ScreenToday,
	models.ScreenHR,
	models.ScreenSpO2,
	models.ScreenECG,
	models.ScreenTemp,
	models.ScreenBPT,
}

// tapTargets opens a detail screen on tap.
var tapTargets = map[models.ScreenID]models.ScreenID{
	models.ScreenHR:                models.ScreenSplHRScr2,
	models.ScreenSpO2:              models.ScreenSplSpO2Select,
	models.ScreenECG:               models.ScreenSplECGScr2,
	models.ScreenBPT:               models.ScreenSplFiSensWear,
	models.ScreenTemp:              models.ScreenSplRawPPG,
	models.ScreenSplHRScr2:         models.ScreenSplPlotHRV,
	models.ScreenSplECGScr2:        models.ScreenSplPlotECG,
	models.ScreenSplSpO2Select:     models.ScreenSplSpO2Measure,
	models.ScreenSplFiSensWear:     models.ScreenSplFiSensCheck,
	models.ScreenSplFiSensCheck:    models.ScreenSplBPTMeasure,
	models.ScreenSplSpO2Timeout:    models.ScreenSplSpO2Measure,
	models.ScreenSplBPTFailed:      models.ScreenSplBPTMeasure,
	models.ScreenSplBPTCalRequired: models.ScreenSplBPTCalProgress,
}

// specialParents is where swipe-down and the crown return from a sub-screen.
var specialParents = map[models.ScreenID]models.ScreenID{
	models.ScreenSplBoot:           models.ScreenHome,
	models.ScreenSplRawPPG:         models.ScreenTemp,
	models.ScreenSplECGScr2:        models.ScreenECG,
	models.ScreenSplFiSensWear:     models.ScreenBPT,
	models.ScreenSplFiSensCheck:    models.ScreenBPT,
	models.ScreenSplBPTMeasure:     models.ScreenBPT,
	models.ScreenSplBPTCalComplete: models.ScreenBPT,
	models.ScreenSplECGComplete:    models.ScreenECG,
	models.ScreenSplPlotHRV:        models.ScreenHR,
	models.ScreenSplSpO2Scr2:       models.ScreenSpO2,
	models.ScreenSplSpO2Measure:    models.ScreenSpO2,
	models.ScreenSplSpO2Complete:   models.ScreenSpO2,
	models.ScreenSplSpO2Timeout:    models.ScreenSpO2,
	models.ScreenSplLowBattery:     models.ScreenHome,
	models.ScreenSplSpO2Select:     models.ScreenSpO2,
	models.ScreenSplBPTCalProgress: models.ScreenBPT,
	models.ScreenSplBPTFailed:      models.ScreenBPT,
	models.ScreenSplBPTEstComplete: models.ScreenBPT,
	models.ScreenSplBPTCalRequired: models.ScreenBPT,
	models.ScreenSplBLE:            models.ScreenHome,
	models.ScreenSplSettings:       models.ScreenHome,
	models.ScreenSplHRScr2:         models.ScreenHR,
	models.ScreenSplPlotECG:        models.ScreenECG,
}

// DefaultGestureTable builds the stock navigation map.
func DefaultGestureTable() GestureTable {
	t := make(GestureTable, len(Carousel)+len(specialParents))
	for i := range Carousel {
		t[Carousel[i]] = carouselHandler(i)
	}
	for spl, parent := range specialParents {
		t[spl] = subScreenHandler(spl, parent)
	}
	return t
}

func carouselHandler(pos int) GestureHandler {
	n := len(Carousel)
	self := Carousel[pos]
	next := Carousel[(pos+1)%n]
	prev := Carousel[(pos-1+n)%n]

	return func(nav Navigator, g models.Gesture) {
		switch g {
		case models.GestureSwipeLeft:
			nav.Navigate(models.NavContext{Screen: next, Direction: models.ScrollLeft})
		case models.GestureSwipeRight:
			nav.Navigate(models.NavContext{Screen: prev, Direction: models.ScrollRight})
		case models.GestureSwipeUp:
			if self == models.ScreenHome {
				nav.Navigate(models.NavContext{Screen: models.ScreenSplSettings, Direction: models.ScrollUp})
			}
		case models.GestureTap:
			if dst, ok := tapTargets[self]; ok {
				nav.Navigate(models.NavContext{Screen: dst, Direction: models.ScrollUp})
			}
		case models.GestureCrownPress:
			if self != models.ScreenHome {
				nav.Navigate(models.NavContext{Screen: models.ScreenHome, Direction: models.ScrollRight})
			}
		}
	}
}

func subScreenHandler(self, parent models.ScreenID) GestureHandler {
	return func(nav Navigator, g models.Gesture) {
		switch g {
		case models.GestureSwipeDown, models.GestureCrownPress:
			nav.Navigate(models.NavContext{Screen: parent, Direction: models.ScrollDown})
		case models.GestureTap:
			if dst, ok := tapTargets[self]; ok {
				nav.Navigate(models.NavContext{Screen: dst, Direction: models.ScrollUp})
			}
		}
	}
}
