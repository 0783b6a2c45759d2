package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-daynight/internal/config"
)

// feed is one published version of the schedule.
type feed struct {
	data         []byte
	etag         string
	lastModified time.Time
}

// ScheduleServer publishes the projected day/hour schedule as an iCalendar feed.
type ScheduleServer struct {
	// The feed is replaced on every rollover and read by every client poll,
	// so it lives behind an atomic pointer rather than a lock.
	current atomic.Pointer[feed]
	Port    string

	// now is replaceable in tests.
	now func() time.Time
}

// NewScheduleServer creates a server for the given port. Use "0" for any free port.
func NewScheduleServer(port string) *ScheduleServer {
	return &ScheduleServer{
		Port: port,
		now:  time.Now,
	}
}

// Handler returns the HTTP handler serving the feed.
func (s *ScheduleServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.serveSchedule)
	return mux
}

// Start listens on localhost and blocks until ctx is cancelled or the listener fails.
func (s *ScheduleServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	listenErr := make(chan error, config.ChannelBufferSize)
	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-listenErr:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update publishes a new schedule. Readers see either the old or the new
// feed, never a mix.
func (s *ScheduleServer) Update(data []byte) {
	sum := sha256.Sum256(data)
	f := &feed{
		data:         data,
		etag:         fmt.Sprintf(config.FormatETag, hex.EncodeToString(sum[:])),
		lastModified: s.now().UTC().Truncate(time.Second),
	}
	s.current.Store(f)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, f.etag,
	)
}

// Ready reports whether a schedule has been published.
func (s *ScheduleServer) Ready() bool {
	return s.current.Load() != nil
}

func (s *ScheduleServer) serveSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	f := s.current.Load()
	if f == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	h := w.Header()
	h.Set(config.HeaderContentType, config.MimeTextCalendar)
	h.Set(config.HeaderXContentType, config.MimeNoSniff)
	h.Set(config.HeaderCacheControl, config.CacheControlPrivate)
	h.Set(config.HeaderETag, f.etag)
	h.Set(config.HeaderLastModified, f.lastModified.Format(http.TimeFormat))

	if notModified(r, f) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(f.data); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

// notModified evaluates If-None-Match first and falls back to If-Modified-Since.
func notModified(r *http.Request, f *feed) bool {
	if match := r.Header.Get(config.HeaderIfNoneMatch); match != "" {
		return match == f.etag
	}
	since := r.Header.Get(config.HeaderIfModifiedSince)
	if since == "" {
		return false
	}
	t, err := http.ParseTime(since)
	if err != nil {
		return false
	}
	return !f.lastModified.After(t)
}
