package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-daynight/internal/config"
	"github.com/tartampluch/go-daynight/internal/engine"
	"github.com/tartampluch/go-daynight/internal/server"
)

//go:embed Icon.png
var appIconData []byte

// DayNightApp hosts a DayCycle in a Fyne window and owns the frame loop,
// preferences and the background schedule feed.
//
// The cycle, the frame driver and every widget are only touched from the
// Fyne main goroutine; the loop goroutine hands each frame over with fyne.Do.
type DayNightApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Cycle  *engine.DayCycle
	Scene  *SceneHost
	Driver *engine.FrameDriver
	Server *server.ScheduleServer
	Clock  engine.Clock // Injected clock for testability (e.g. mocking time travel)

	HUD     *widget.Label
	lastHUD string

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem   *fyne.MenuItem
	TrayPauseItem    *fyne.MenuItem
	TrayEventsItem   *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	SupportedLanguages []string
	configChan         chan string

	Events       *EventLog
	eventsWindow fyne.Window
	eventsTable  *widget.Table
	eventsView   []EventRecord

	settingsWindow fyne.Window
}

// NewDayNightApp constructs the application, binds the cycle to a new scene
// and wires the event handlers.
func NewDayNightApp(a fyne.App, ctx context.Context, cycle *engine.DayCycle, hints engine.LayoutHints, srv *server.ScheduleServer) *DayNightApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	app := &DayNightApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Cycle:              cycle,
		Scene:              NewSceneHost(hints),
		Driver:             engine.NewFrameDriver(engine.RealClock{}),
		Server:             srv,
		Clock:              engine.RealClock{}, // Default to real clock in production
		HUD:                widget.NewLabel(""),
		SupportedLanguages: config.SupportedLanguages,
		configChan:         make(chan string, config.ChannelBufferSize),
		Events:             NewEventLog(config.EventLogCapacity),
	}
	app.HUD.TextStyle = fyne.TextStyle{Bold: true}

	cycle.Bind(app.Scene, hints)
	cycle.OnHourElapsed(app.handleHour)
	cycle.OnDayComplete(app.handleDay)

	return app
}

// Run launches the application services and the main UI loop.
func (app *DayNightApp) Run() {
	app.SetupI18n()
	app.applyPreferences()
	app.watchPreferences()

	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			fyne.Do(func() {
				app.App.SendNotification(fyne.NewNotification(
					config.TitleStartupError,
					fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
			})
		}
	}()

	app.setupMainWindow()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayNotSupported,
			config.LogKeyComponent, config.CompUI)
	}

	app.publishSchedule()

	go app.frameLoop()
	app.Window.ShowAndRun()
}

// setupMainWindow places the HUD above the scene, so the darkness overlay
// never dims it.
func (app *DayNightApp) setupMainWindow() {
	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetContent(container.NewStack(
		app.Scene.Content(),
		container.NewPadded(container.NewVBox(app.HUD)),
	))
	app.Window.Resize(fyne.NewSize(config.SceneWidth, config.SceneHeight))
	app.Window.SetMaster()
	app.refreshHUD()
}

// watchPreferences forwards preference changes to the frame loop.
func (app *DayNightApp) watchPreferences() {
	app.Preferences.AddChangeListener(func() {
		select {
		case app.configChan <- config.PrefDayLength:
		default:
		}
	})
}

// applyPreferences pushes the stored preferences into the localizer, the
// labels and the running cycle.
func (app *DayNightApp) applyPreferences() {
	app.UpdateLocalizer()
	app.RefreshTrayMenu()
	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	}
	app.lastHUD = ""
	app.refreshHUD()

	current := app.Cycle.Options().DayLengthSeconds
	length := app.Preferences.FloatWithFallback(config.PrefDayLength, current)
	if length > 0 && length != current {
		app.Cycle.SetDayLength(length)
		app.publishSchedule()
	}
}

// setupTrayMenu constructs the system tray menu.
func (app *DayNightApp) setupTrayMenu() {
	// The status item mirrors the HUD and opens the event log.
	app.TrayStatusItem = fyne.NewMenuItem(config.FallbackTrayLabel, func() {
		app.ShowEventsWindow()
	})

	app.TrayPauseItem = fyne.NewMenuItem(app.pauseLabel(), func() {
		app.TogglePause()
	})

	app.TrayEventsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuEvents), func() {
		app.ShowEventsWindow()
	})

	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayPauseItem,
		app.TrayEventsItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
	app.updateTrayStatus()
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *DayNightApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayPauseItem.Label = app.pauseLabel()
	app.TrayEventsItem.Label = app.GetMsg(config.TKeyMenuEvents)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.updateTrayStatus()
}

func (app *DayNightApp) pauseLabel() string {
	if app.Driver.Paused() {
		return app.GetMsg(config.TKeyMenuResume)
	}
	return app.GetMsg(config.TKeyMenuPause)
}

// TogglePause stops or restarts the simulation. The schedule is republished
// on resume because the projection assumes a running clock.
func (app *DayNightApp) TogglePause() {
	if app.Driver.Paused() {
		app.Driver.Resume()
		slog.Info(config.MsgResumed, config.LogKeyComponent, config.CompUI)
		app.publishSchedule()
	} else {
		app.Driver.Pause()
		slog.Info(config.MsgPaused, config.LogKeyComponent, config.CompUI)
	}

	if app.TrayPauseItem != nil {
		app.TrayPauseItem.Label = app.pauseLabel()
		app.Menu.Refresh()
	}
}

// frameLoop ticks the simulation at the configured frame rate until the
// context is cancelled.
func (app *DayNightApp) frameLoop() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	ticker := time.NewTicker(config.FrameInterval)
	defer ticker.Stop()

	log.Info(config.MsgLoopStart, config.LogKeyFPS, config.FramesPerSecond)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgLoopStop)
			return

		case <-app.configChan:
			fyne.Do(app.applyPreferences)

		case <-ticker.C:
			fyne.Do(app.step)
		}
	}
}

// step advances the cycle by one frame.
func (app *DayNightApp) step() {
	app.Cycle.Advance(app.Driver.Tick())
	app.refreshHUD()
}

// refreshHUD only touches the label when the displayed hour changes.
func (app *DayNightApp) refreshHUD() {
	st := app.Cycle.Snapshot()
	text := app.clockText(st.DayCount, st.Hour)
	if text == app.lastHUD {
		return
	}
	app.lastHUD = text
	app.HUD.SetText(text)
}

// handleHour records an hour event.
func (app *DayNightApp) handleHour(hour int) {
	app.recordEvent(engine.EventHour, hour)
	app.updateTrayStatus()
}

// handleDay records a rollover, notifies the user and republishes the schedule.
func (app *DayNightApp) handleDay(day int) {
	app.recordEvent(engine.EventDay, day)

	if app.Preferences.BoolWithFallback(config.PrefNotifyDays, true) {
		app.App.SendNotification(fyne.NewNotification(config.AppName, app.newDayText(day)))
	}

	app.publishSchedule()
}

func (app *DayNightApp) recordEvent(kind engine.EventKind, value int) {
	app.Events.Add(EventRecord{Kind: kind, Value: value, At: app.Clock.Now()})
	app.refreshEventsTable()
}

// publishSchedule projects the upcoming boundaries and hands them to the feed.
func (app *DayNightApp) publishSchedule() {
	gen := &engine.ScheduleGenerator{
		Clock:         app.Clock,
		FormatSummary: app.buildSummaryFormatter(),
	}

	data, err := gen.Generate(app.Cycle.Snapshot(), app.Cycle.Options().DayLengthSeconds)
	if err != nil {
		slog.Error(config.ErrSchedule, config.LogKeyError, err, config.LogKeyComponent, config.CompUI)
		return
	}

	app.Server.Update(data)
}

// updateTrayStatus shows the current simulated time in the tray.
func (app *DayNightApp) updateTrayStatus() {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}
	st := app.Cycle.Snapshot()
	app.TrayStatusItem.Label = app.clockText(st.DayCount, st.Hour)
	app.Menu.Refresh()
}

// clockText renders "Day N · HH:00" in the active language.
func (app *DayNightApp) clockText(day, hour int) string {
	msg := app.localize(config.TKeyHUDClock, map[string]interface{}{
		"Day":  day,
		"Hour": fmt.Sprintf("%02d", hour),
	})
	if msg == "" {
		return fmt.Sprintf(config.FallbackHUD, day, hour)
	}
	return msg
}

func (app *DayNightApp) newDayText(day int) string {
	msg := app.localize(config.TKeyNotifNewDay, map[string]interface{}{"Day": day})
	if msg == "" {
		return fmt.Sprintf(config.FallbackNewDay, day)
	}
	return msg
}

// buildSummaryFormatter returns a closure that localizes schedule event summaries.
func (app *DayNightApp) buildSummaryFormatter() func(kind engine.EventKind, value int) string {
	return func(kind engine.EventKind, value int) string {
		if kind == engine.EventDay {
			if msg := app.localize(config.TKeyEvtDay, map[string]interface{}{"Day": value}); msg != "" {
				return msg
			}
			return fmt.Sprintf(config.FallbackEvtDay, value)
		}
		if msg := app.localize(config.TKeyEvtHour, map[string]interface{}{"Hour": fmt.Sprintf("%02d", value)}); msg != "" {
			return msg
		}
		return fmt.Sprintf(config.FallbackEvtHour, value)
	}
}
