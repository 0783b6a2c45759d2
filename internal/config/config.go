package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Day Night"
	AppID             = "com.github.tartampluch.go-daynight"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagConfig       = "config"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescConfig   = "Path to an optional YAML scene file"
	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Day Cycle Defaults
// -----------------------------------------------------------------------------

const (
	DefaultDayLengthSeconds = 180.0
	DefaultSunriseStart     = 0.20
	DefaultSunriseEnd       = 0.30
	DefaultSunsetStart      = 0.70
	DefaultSunsetEnd        = 0.80
	DefaultMinDarkAlpha     = 0.55
	DefaultMaxLightAlpha    = 0.0
	DefaultSunColor         = 0xFFF4A3
	DefaultMoonColor        = 0xCFE3FF

	DefaultBackLayerDepth = 0.0
	DefaultOverlayDepth   = 28.9

	HoursPerDay = 24
	NoHourFired = -1 // lastHour sentinel before the first hour event
)

// Celestial arc geometry, in scene pixels.
const (
	ArcBaseY     = 120.0
	ArcHeight    = 80.0
	SunRadius    = 30
	MoonSize     = 40
	MoonShadowDX = 8 // horizontal offset of the shadow disc carving the crescent
)

// -----------------------------------------------------------------------------
// Scene Window & Frame Loop
// -----------------------------------------------------------------------------

const (
	SceneWidth       = 960
	SceneHeight      = 540
	FramesPerSecond  = 60
	FrameInterval    = time.Second / FramesPerSecond
	MaxFrameDelta    = 0.25 // seconds; larger gaps (suspend, debugger) are clamped
	DefaultSpeed     = 1.0
	EventLogCapacity = 200

	MinDayLengthSeconds = 1
	MaxDayLengthSeconds = 86400
)

// Scene palette. The sky sits below every layer; the ground is drawn at the
// back layer depth so the bodies set behind it.
const (
	SkyColor     = 0x5D8FCB
	GroundColor  = 0x2F4A2B
	GroundHeight = 140
	OverlayColor = 0x000000
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	SettingsWindowWidth = 420
	DefaultLanguage     = "en"
	IconFile            = "Icon.png"

	PrefDayLength  = "day_length_seconds"
	PrefLanguage   = "language"
	PrefNotifyDays = "notify_day_rollover"
	PrefLastRun    = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// UI Event Log Window Constants
// -----------------------------------------------------------------------------

const (
	EventsWinWidth  = 420
	EventsWinHeight = 360

	ColIDKind  = 0
	ColIDValue = 1
	ColIDWhen  = 2

	ColWidthKind  = 110
	ColWidthValue = 110
	ColWidthWhen  = 160

	TimeFormatDisplay = "15:04:05"
	TablePlaceholder  = "Cell Content"
	LogMsgOpenWin     = "Opening event log window"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyWinSettings   = "win_settings_title"
	TKeyWinEvents     = "win_events_title"
	TKeyMenuPause     = "menu_pause"
	TKeyMenuResume    = "menu_resume"
	TKeyMenuSettings  = "menu_settings"
	TKeyMenuEvents    = "menu_events"
	TKeyHUDClock      = "hud_clock"    // Requires Day, Hour
	TKeyNotifNewDay   = "notif_new_day" // Requires Day
	TKeyLblLanguage   = "lbl_language"
	TKeyHelpLanguage  = "help_language"
	TKeyLblDayLength  = "lbl_day_length"
	TKeyHelpDayLength = "help_day_length"
	TKeyLblSeconds    = "lbl_seconds_suffix"
	TKeyLblNotifyDays = "lbl_notify_days"
	TKeyLblGeneral    = "lbl_general"
	TKeyBtnSave       = "btn_save"
	TKeyBtnCancel     = "btn_cancel"
	TKeyLblFooter     = "lbl_footer"
	TKeyColKind       = "col_kind"
	TKeyColValue      = "col_value"
	TKeyColWhen       = "col_when"
	TKeyKindDay       = "kind_day"
	TKeyKindHour      = "kind_hour"
	TKeyEvtHour       = "event_hour_summary" // Requires Hour
	TKeyEvtDay        = "event_day_summary"  // Requires Day

	TKeyErrDayLenReq   = "err_day_length_required"
	TKeyErrDayLenNum   = "err_day_length_number"
	TKeyErrDayLenRange = "err_day_length_range"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Day Night//Schedule//EN"
	ICalCalName = "Day Night Schedule"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "godaynight"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropCategories = "CATEGORIES"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	CategoryHour = "HOUR"
	CategoryDay  = "DAY"

	UIDHashLength   = 16
	FormatHashInput = "%d|%d|%s"
	FormatUID       = "%s-%d-%02d@%s"
	UIDSalt         = "go-daynight-v1-"

	// StubVCalendar is the minimal valid iCalendar object served when no schedule can be projected.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	DefaultPort        = 18081
	MinPort            = 1
	MaxPort            = 65535
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Scene File (YAML) & Environment
// -----------------------------------------------------------------------------

const (
	EnvDayLength      = "DAYNIGHT_DAY_LENGTH"
	EnvSchedulePort   = "DAYNIGHT_SCHEDULE_PORT"
	HexColorPrefix    = "#"
	HexColorDigits    = 6
	SceneKeySunColor  = "sun_color"
	SceneKeyMoonColor = "moon_color"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
	ErrSceneRead      = "failed to read scene file"
	ErrSceneParse     = "failed to parse scene file"
	ErrSceneColor     = "invalid color, expected #RRGGBB"
	ErrSceneEnv       = "invalid environment override"
	ErrSchedule       = "failed to build schedule"

	ErrSceneColorEmpty  = "value is empty; quote it so '#' is not read as a comment"
	ErrTrayNotSupported = "system tray not supported on this platform/driver"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Schedule initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackHUD        = "Day %d · %02d:00"
	FallbackNewDay     = "Day %d begins"
	FallbackEvtHour    = "Hour %02d:00"
	FallbackEvtDay     = "Day %d"
	FallbackTrayLabel  = "Go Day Night"
	TitleStartupError  = "Startup Error"
	MsgPortBusy        = "Port %s is busy or unavailable."
	MsgAppStop         = "Application stopped gracefully"
	MsgCtxCancel       = "Context cancelled, shutting down UI"
	MsgAppStarting     = "Starting application"
	MsgServerListen    = "HTTP server listening"
	MsgServerStop      = "Shutting down HTTP server..."
	MsgCacheUpdated    = "Schedule cache updated"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
	MsgDayComplete     = "Day rollover"
	MsgHourElapsed     = "Hour elapsed"
	MsgBound           = "Day cycle bound to renderer"
	MsgDayLength       = "Day length changed"
	MsgLoopStart       = "Frame loop started"
	MsgLoopStop        = "Frame loop stopping due to context cancellation"
	MsgPaused          = "Simulation paused"
	MsgResumed         = "Simulation resumed"
	MsgSceneLoaded     = "Scene file loaded"
	MsgSceneDefault    = "No scene file given, using defaults"
	MsgScheduleUpdated = "Schedule regenerated"
	MsgSettingsFocus   = "Settings window already open, requesting focus"
	MsgSettingsOpen    = "Opening settings window"
	MsgSettingsSave    = "Saving preferences"
	MsgNotifyDisabled  = "Day rollover notifications disabled"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeyDay       = "day"
	LogKeyHour      = "hour"
	LogKeyTimeOfDay = "time_of_day"
	LogKeyDayLength = "day_length_seconds"
	LogKeyFPS       = "fps"
	LogKeyEvents    = "events"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyCount     = "count"
	LogKeyWidth     = "width"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompServer = "server"
	CompScene  = "scene"
	CompWorker = "worker"
	CompMain   = "main"
	CompI18n   = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
