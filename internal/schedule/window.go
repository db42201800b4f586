package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/wheelibin/dusk/internal/config"
)

const (
	patternSunrise = "sunrise"
	patternSunset  = "sunset"
)

// Window is the part of the day during which the light may be switched on.
// All arithmetic is in UTC: the current time is shifted by Offset and
// compared against Start and End on the shifted date.
type Window struct {
	Offset time.Duration
	Start  string
	End    string

	hasLocation bool
	lat         float64
	lng         float64
}

// NewWindow validates the window bounds. geoLocation ("lat,lng") is only
// needed when a bound refers to sunrise or sunset.
func NewWindow(cfg config.Window, geoLocation string) (*Window, error) {
	w := &Window{Offset: cfg.Offset, Start: cfg.Start, End: cfg.End}

	for _, bound := range []string{cfg.Start, cfg.End} {
		if err := validatePatternTime(bound); err != nil {
			return nil, err
		}
	}

	if geoLocation != "" {
		lat, lng, err := parseGeoLocation(geoLocation)
		if err != nil {
			return nil, err
		}
		w.hasLocation, w.lat, w.lng = true, lat, lng
	}

	if isAstronomical(cfg.Start) || isAstronomical(cfg.End) {
		if !w.hasLocation {
			return nil, fmt.Errorf("window bounds %q - %q need a geo location", cfg.Start, cfg.End)
		}
	}

	return w, nil
}

// IsActive reports whether now, shifted by the offset, lies strictly between
// the window's start and end.
func (w Window) IsActive(now time.Time) bool {
	shifted := now.UTC().Add(w.Offset)
	start, end := w.Bounds(shifted)
	return shifted.After(start) && shifted.Before(end)
}

// Bounds returns the window's start and end on the date of baseDate, on the
// same clock as the shifted time IsActive compares: "HH:MM" bounds are read
// as that clock, sunrise and sunset are real instants moved by Offset.
func (w Window) Bounds(baseDate time.Time) (time.Time, time.Time) {
	baseDate = baseDate.UTC()

	var sunriseTime, sunsetTime time.Time
	if w.hasLocation && (isAstronomical(w.Start) || isAstronomical(w.End)) {
		sunriseTime, sunsetTime = sunrise.SunriseSunset(
			w.lat, w.lng,
			baseDate.Year(), baseDate.Month(), baseDate.Day(),
		)
		sunriseTime = sunriseTime.Add(w.Offset)
		sunsetTime = sunsetTime.Add(w.Offset)
	}

	return TimeFromPattern(w.Start, sunriseTime, sunsetTime, baseDate),
		TimeFromPattern(w.End, sunriseTime, sunsetTime, baseDate)
}

func TimeFromPattern(patternTime string, sunrise time.Time, sunset time.Time, baseDate time.Time) time.Time {

	// sunrise or sunrise offset
	if strings.HasPrefix(patternTime, patternSunrise) {
		return timeFromAstronomicalPatternTime(patternTime, patternSunrise, sunrise)
	}

	// sunset or sunset offset
	if strings.HasPrefix(patternTime, patternSunset) {
		return timeFromAstronomicalPatternTime(patternTime, patternSunset, sunset)
	}

	// time e.g 19:30
	return TimeFromConfigTimeString(patternTime, baseDate)
}

// returns a UTC Time built from the supplied time string (e.g. "13:23") on the date of baseDate
func TimeFromConfigTimeString(timeString string, baseDate time.Time) time.Time {
	timeHM := strings.Split(timeString, ":")
	hour, _ := strconv.Atoi(timeHM[0])
	mins := 0
	if len(timeHM) > 1 {
		mins, _ = strconv.Atoi(timeHM[1])
	}
	baseDate = baseDate.UTC()
	return time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(), hour, mins, 0, 0, time.UTC)
}

// returns an adjusted eventTime e.g ("sunset-1h", "sunset", 2023-06-27 21:43:18) -> 2023-06-27 20:43:18
func timeFromAstronomicalPatternTime(patternTime string, event string, eventTime time.Time) time.Time {
	if patternTime == event {
		return eventTime
	}
	offset, _ := time.ParseDuration(patternTime[len(event):])
	return eventTime.Add(offset)
}

func isAstronomical(patternTime string) bool {
	return strings.HasPrefix(patternTime, patternSunrise) || strings.HasPrefix(patternTime, patternSunset)
}

func validatePatternTime(patternTime string) error {
	for _, event := range []string{patternSunrise, patternSunset} {
		if strings.HasPrefix(patternTime, event) {
			if patternTime == event {
				return nil
			}
			if _, err := time.ParseDuration(patternTime[len(event):]); err != nil {
				return fmt.Errorf("invalid window bound %q: %w", patternTime, err)
			}
			return nil
		}
	}
	if _, err := time.Parse("15:04", patternTime); err != nil {
		return fmt.Errorf("invalid window bound %q, expected HH:MM, sunrise or sunset: %w", patternTime, err)
	}
	return nil
}

func parseGeoLocation(geoLocation string) (float64, float64, error) {
	latLng := strings.Split(geoLocation, ",")
	if len(latLng) != 2 {
		return 0, 0, fmt.Errorf("invalid geo location %q, expected lat,lng", geoLocation)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latLng[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude in geo location %q: %w", geoLocation, err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(latLng[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude in geo location %q: %w", geoLocation, err)
	}
	return lat, lng, nil
}
