package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-daynight/internal/config"
)

// EventKind distinguishes the two boundaries a DayCycle raises.
type EventKind int

const (
	EventHour EventKind = iota
	EventDay
)

// String returns the iCalendar category of the kind.
func (k EventKind) String() string {
	if k == EventDay {
		return config.CategoryDay
	}
	return config.CategoryHour
}

// ScheduleGenerator projects upcoming hour and day boundaries of a DayCycle
// onto wall-clock time and renders them as an iCalendar feed.
type ScheduleGenerator struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary allows the UI to inject localized strings into the logic layer.
	FormatSummary func(kind EventKind, value int) string
}

// Generate renders the next 24 hour boundaries and the next rollover.
//
// The projection assumes the clock keeps running at dayLengthSeconds with
// no pause. A non-positive day length cannot be projected and yields an
// empty (but valid) calendar.
func (g *ScheduleGenerator) Generate(st State, dayLengthSeconds float64) ([]byte, error) {
	if dayLengthSeconds <= 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// One simulated day is the natural refresh period of the feed.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(time.Duration(dayLengthSeconds * float64(time.Second)))
	cal.Props.Set(refreshProp)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for k := 1; k <= config.HoursPerDay; k++ {
		abs := st.Hour + k
		hour := abs % config.HoursPerDay
		day := st.DayCount + abs/config.HoursPerDay

		boundary := float64(abs) / config.HoursPerDay
		at := now.Add(time.Duration((boundary - st.TimeOfDay) * dayLengthSeconds * float64(time.Second)))

		if hour == 0 {
			cal.Children = append(cal.Children, g.newEvent(EventDay, day, day, 0, at, dtStampProp).Component)
		}
		cal.Children = append(cal.Children, g.newEvent(EventHour, hour, day, hour, at, dtStampProp).Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgScheduleUpdated,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDay, st.DayCount,
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// newEvent builds one VEVENT. UIDs depend only on the simulated day and
// hour so a boundary keeps its identity across regenerations.
func (g *ScheduleGenerator) newEvent(kind EventKind, value, day, hour int, at time.Time, stamp *ical.Prop) *ical.Event {
	input := fmt.Sprintf(config.FormatHashInput, day, hour, config.UIDSalt+kind.String())
	hash := sha256.Sum256([]byte(input))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, day, hour, config.ICalDomain))
	event.Props.SetText(config.PropSummary, g.summary(kind, value))
	event.Props.SetText(config.PropCategories, kind.String())
	event.Props.Set(stamp)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDateTime(at.UTC())
	event.Props.Set(dtStartProp)

	return event
}

func (g *ScheduleGenerator) summary(kind EventKind, value int) string {
	if g.FormatSummary != nil {
		return g.FormatSummary(kind, value)
	}
	if kind == EventDay {
		return fmt.Sprintf(config.FallbackEvtDay, value)
	}
	return fmt.Sprintf(config.FallbackEvtHour, value)
}
