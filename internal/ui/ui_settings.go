package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-daynight/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect     *widget.Select
	entryDayLength *NumericalEntry
	checkNotify    *widget.Check
}

// ShowSettingsWindow displays the configuration dialog.
func (app *DayNightApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.buildSettingsWidgets()

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	widDayLength := container.NewBorder(nil, nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblSeconds)), sw.entryDayLength)
	itemDayLength := widget.NewFormItem(app.GetMsg(config.TKeyLblDayLength), widDayLength)
	itemDayLength.HintText = app.GetMsg(config.TKeyHelpDayLength)

	generalForm := widget.NewForm(itemLang, itemDayLength)
	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", container.NewVBox(generalForm, sw.checkNotify))

	saveAction := func() {
		// The day length is the only field that can block saving.
		if err := sw.entryDayLength.Validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw)
		w.Close()
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// buildSettingsWidgets creates the inputs pre-filled from preferences.
func (app *DayNightApp) buildSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.entryDayLength = NewDecimalEntry()
	current := app.Preferences.FloatWithFallback(config.PrefDayLength, app.Cycle.Options().DayLengthSeconds)
	sw.entryDayLength.SetText(strconv.FormatFloat(current, 'f', -1, 64))
	sw.entryDayLength.Validator = app.validateDayLength

	sw.checkNotify = widget.NewCheck(app.GetMsg(config.TKeyLblNotifyDays), nil)
	sw.checkNotify.Checked = app.Preferences.BoolWithFallback(config.PrefNotifyDays, true)

	return sw
}

// validateDayLength accepts a number of seconds within the supported range.
func (app *DayNightApp) validateDayLength(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrDayLenReq))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrDayLenNum))
	}
	if v < config.MinDayLengthSeconds || v > config.MaxDayLengthSeconds {
		return errors.New(app.GetMsg(config.TKeyErrDayLenRange))
	}
	return nil
}

// saveSettings persists the values and applies them to the running app.
func (app *DayNightApp) saveSettings(sw *settingsWidgets) {
	slog.Info(config.MsgSettingsSave, config.LogKeyComponent, config.CompUISet)

	if sw.langSelect.Selected != "" {
		app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	}

	if v, err := strconv.ParseFloat(sw.entryDayLength.Text, 64); err == nil {
		app.Preferences.SetFloat(config.PrefDayLength, v)
	}

	app.Preferences.SetBool(config.PrefNotifyDays, sw.checkNotify.Checked)
	if !sw.checkNotify.Checked {
		slog.Info(config.MsgNotifyDisabled, config.LogKeyComponent, config.CompUISet)
	}

	app.applyPreferences()
}
