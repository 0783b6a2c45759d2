package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-daynight/internal/config"
)

// requiredKeys lists every translation key referenced from Go code.
var requiredKeys = []string{
	config.TKeyWinTitle,
	config.TKeyWinSettings,
	config.TKeyWinEvents,
	config.TKeyMenuPause,
	config.TKeyMenuResume,
	config.TKeyMenuSettings,
	config.TKeyMenuEvents,
	config.TKeyHUDClock,
	config.TKeyNotifNewDay,
	config.TKeyLblLanguage,
	config.TKeyHelpLanguage,
	config.TKeyLblDayLength,
	config.TKeyHelpDayLength,
	config.TKeyLblSeconds,
	config.TKeyLblNotifyDays,
	config.TKeyLblGeneral,
	config.TKeyBtnSave,
	config.TKeyBtnCancel,
	config.TKeyLblFooter,
	config.TKeyColKind,
	config.TKeyColValue,
	config.TKeyColWhen,
	config.TKeyKindDay,
	config.TKeyKindHour,
	config.TKeyEvtHour,
	config.TKeyEvtDay,
	config.TKeyErrDayLenReq,
	config.TKeyErrDayLenNum,
	config.TKeyErrDayLenRange,
}

func loadLocale(t *testing.T, lang string) map[string]interface{} {
	t.Helper()

	// Adjust path if running test from internal/ui or root
	path := filepath.Join("locales", "active."+lang+".json")
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		path = filepath.Join("..", "..", "internal", "ui", "locales", "active."+lang+".json")
		content, err = os.ReadFile(path)
	}
	require.NoError(t, err, "Must load %s", path)

	var jsonMap map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")
	return jsonMap
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in each supported locale, and flags orphans.
func TestI18nIntegrity(t *testing.T) {
	defined := make(map[string]bool, len(requiredKeys))
	for _, k := range requiredKeys {
		defined[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			jsonMap := loadLocale(t, lang)

			for key := range defined {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !defined[jsonKey] {
					t.Logf("Warning: Key '%s' exists in JSON but is not checked in the test suite (might be unused)", jsonKey)
				}
			}
		})
	}
}

// TestI18nTemplates checks that templated messages reference their data fields
// and the footer keeps its version verb.
func TestI18nTemplates(t *testing.T) {
	templates := map[string][]string{
		config.TKeyHUDClock:    {"{{.Day}}", "{{.Hour}}"},
		config.TKeyNotifNewDay: {"{{.Day}}"},
		config.TKeyEvtHour:     {"{{.Hour}}"},
		config.TKeyEvtDay:      {"{{.Day}}"},
		config.TKeyLblFooter:   {"%s"},
	}

	for _, lang := range config.SupportedLanguages {
		jsonMap := loadLocale(t, lang)
		for key, fields := range templates {
			msg, _ := jsonMap[key].(string)
			for _, f := range fields {
				assert.Containsf(t, msg, f, "%s/%s must contain %s", lang, key, f)
			}
		}
	}
}
