// Package session classifies bar timestamps into US-equity intraday windows.
// The strategy engine takes the classifier as an injected function; this
// package supplies the default clock.
package session

import (
	"time"

	"ScalpRadar/internal/model"
)

// Session windows in minutes-of-day, America/New_York.
const (
	openingStart = 9*60 + 30  // 09:30
	middayStart  = 11 * 60    // 11:00
	powerStart   = 15 * 60    // 15:00
	closeMinute  = 16 * 60    // 16:00
)

var newYork = loadNewYork()

func loadNewYork() *time.Location {
	if loc, err := time.LoadLocation("America/New_York"); err == nil {
		return loc
	}
	// Fallback when the tz database is unavailable. No DST handling.
	return time.FixedZone("EST", -5*3600)
}

// Classify maps a timestamp to its intraday window: OPENING 09:30-11:00,
// MIDDAY 11:00-15:00, POWER 15:00-16:00, everything else (including
// weekends) OFF.
func Classify(t time.Time) model.Session {
	et := t.In(newYork)
	if wd := et.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return model.SessionOff
	}
	hm := et.Hour()*60 + et.Minute()
	switch {
	case hm >= openingStart && hm < middayStart:
		return model.SessionOpening
	case hm >= middayStart && hm < powerStart:
		return model.SessionMidday
	case hm >= powerStart && hm < closeMinute:
		return model.SessionPower
	}
	return model.SessionOff
}
