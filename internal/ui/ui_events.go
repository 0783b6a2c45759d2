package ui

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-daynight/internal/config"
	"github.com/tartampluch/go-daynight/internal/engine"
)

// EventRecord is one hour or day event as seen by the host.
type EventRecord struct {
	Kind  engine.EventKind
	Value int // hour 0-23 or day count
	At    time.Time
}

// EventLog keeps the most recent events in a fixed-size ring.
type EventLog struct {
	mu    sync.RWMutex
	buf   []EventRecord
	start int
	size  int
}

// NewEventLog creates a log holding at most capacity records.
func NewEventLog(capacity int) *EventLog {
	if capacity < 1 {
		capacity = 1
	}
	return &EventLog{buf: make([]EventRecord, capacity)}
}

// Add appends a record, evicting the oldest one when full.
func (l *EventLog) Add(r EventRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := (l.start + l.size) % len(l.buf)
	l.buf[idx] = r
	if l.size < len(l.buf) {
		l.size++
	} else {
		l.start = (l.start + 1) % len(l.buf)
	}
}

// Len returns the number of stored records.
func (l *EventLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.size
}

// Recent returns a copy of the records, newest first.
func (l *EventLog) Recent() []EventRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]EventRecord, l.size)
	for i := 0; i < l.size; i++ {
		out[i] = l.buf[(l.start+l.size-1-i)%len(l.buf)]
	}
	return out
}

// ShowEventsWindow displays the recent hour and day events, newest first.
// If the window is already open, it requests focus.
func (app *DayNightApp) ShowEventsWindow() {
	if app.eventsWindow != nil {
		app.eventsWindow.RequestFocus()
		return
	}

	app.eventsWindow = app.App.NewWindow(app.GetMsg(config.TKeyWinEvents))
	app.eventsWindow.Resize(fyne.NewSize(config.EventsWinWidth, config.EventsWinHeight))

	app.eventsView = app.Events.Recent()

	slog.Info(config.LogMsgOpenWin,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(app.eventsView))

	table := widget.NewTable(
		func() (int, int) {
			return len(app.eventsView), 3
		},
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)
			if id.Row >= len(app.eventsView) {
				return
			}
			label.SetText(app.eventCell(app.eventsView[id.Row], id.Col))
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabel(config.TablePlaceholder)
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		label := o.(*widget.Label)
		label.TextStyle = fyne.TextStyle{Bold: true}
		switch id.Col {
		case config.ColIDKind:
			label.SetText(app.GetMsg(config.TKeyColKind))
		case config.ColIDValue:
			label.SetText(app.GetMsg(config.TKeyColValue))
		case config.ColIDWhen:
			label.SetText(app.GetMsg(config.TKeyColWhen))
		}
	}

	table.SetColumnWidth(config.ColIDKind, config.ColWidthKind)
	table.SetColumnWidth(config.ColIDValue, config.ColWidthValue)
	table.SetColumnWidth(config.ColIDWhen, config.ColWidthWhen)
	app.eventsTable = table

	app.eventsWindow.SetContent(container.NewBorder(nil, nil, nil, nil, table))
	app.eventsWindow.SetOnClosed(func() {
		app.eventsWindow = nil
		app.eventsTable = nil
		app.eventsView = nil
	})

	app.eventsWindow.Show()
}

// refreshEventsTable reloads the open event log window, if any.
func (app *DayNightApp) refreshEventsTable() {
	if app.eventsTable == nil {
		return
	}
	app.eventsView = app.Events.Recent()
	app.eventsTable.Refresh()
}

// eventCell renders one column of a record.
func (app *DayNightApp) eventCell(r EventRecord, col int) string {
	switch col {
	case config.ColIDKind:
		if r.Kind == engine.EventDay {
			return app.GetMsg(config.TKeyKindDay)
		}
		return app.GetMsg(config.TKeyKindHour)
	case config.ColIDValue:
		if r.Kind == engine.EventDay {
			return fmt.Sprintf("%d", r.Value)
		}
		return fmt.Sprintf("%02d:00", r.Value)
	default:
		return r.At.Format(config.TimeFormatDisplay)
	}
}
