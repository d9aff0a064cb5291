package tui

import (
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-etch/internal/config"
	"github.com/vovakirdan/tui-etch/internal/paint"
	"github.com/vovakirdan/tui-etch/internal/storage"
)

// Recorder accumulates statistics for one sketch session and writes them
// to the store. It is shared by pointer between the model copies Bubble Tea
// produces, and touched only from the program's event loop and, once the
// program has exited, by the host that started it.
type Recorder struct {
	store   *storage.Store
	logger  *log.Logger
	session storage.Session
}

// NewRecorder starts a session record for user. store may be nil.
func NewRecorder(store *storage.Store, logger *log.Logger, user string, remote bool) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{
		store:  store,
		logger: logger,
		session: storage.Session{
			ID:        uuid.NewString(),
			User:      user,
			Remote:    remote,
			StartedAt: time.Now(),
		},
	}
}

// ID returns the session identifier.
func (r *Recorder) ID() string {
	return r.session.ID
}

// Session returns a copy of the statistics gathered so far.
func (r *Recorder) Session() storage.Session {
	return r.session
}

// Interaction counts one painted cell in mode m.
func (r *Recorder) Interaction(m paint.Mode) {
	switch m {
	case paint.ModeNormal:
		r.session.Strokes++
	case paint.ModeRainbow:
		r.session.Rainbow++
	case paint.ModeDarken:
		r.session.Darkens++
	}
}

// Cleared counts an explicit clear.
func (r *Recorder) Cleared() {
	r.session.Clears++
}

// GridSize notes the current grid size without counting a change.
func (r *Recorder) GridSize(size int) {
	r.session.FinalSize = size
}

// Resized counts a grid size change.
func (r *Recorder) Resized(size int) {
	r.session.Resizes++
	r.session.FinalSize = size
}

// Save writes the session. Saving twice updates the same record.
// Failures are logged, never returned: statistics are best-effort.
func (r *Recorder) Save() {
	r.session.EndedAt = time.Now()
	if r.store == nil {
		return
	}
	if err := r.store.SaveSession(r.session); err != nil {
		r.logger.Warn("could not save session", "session", r.session.ID, "error", err)
	}
}

// ApplyPreferences overlays preferences stored by earlier sessions on cfg.
// Invalid stored values are ignored.
func ApplyPreferences(cfg config.Config, store *storage.Store) config.Config {
	if store == nil {
		return cfg
	}
	prefs, err := store.Preferences()
	if err != nil {
		return cfg
	}

	if v, ok := prefs[storage.PrefGridSize]; ok {
		if n, err := strconv.Atoi(v); err == nil && cfg.ValidSize(n) {
			cfg.Grid.Size = n
		}
	}
	if v, ok := prefs[storage.PrefMode]; ok {
		if _, err := paint.ParseMode(v); err == nil {
			cfg.Paint.Mode = v
		}
	}
	if v, ok := prefs[storage.PrefColor]; ok {
		if c, err := paint.ParseColor(v); err == nil {
			cfg.Paint.Color = string(c)
		}
	}
	if v, ok := prefs[storage.PrefTheme]; ok {
		next := cfg
		next.UI.Theme = v
		if next.Validate() == nil {
			cfg = next
		}
	}
	return cfg
}
