package report

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// CharmLogger is a Reporter backed by github.com/charmbracelet/log,
// following the same construction pattern as stacktower's
// internal/cli.newLogger: a writer and a level, with timestamps
// enabled.
type CharmLogger struct {
	l *log.Logger
}

// NewCharmLogger creates a CharmLogger writing to w at the given level.
func NewCharmLogger(w io.Writer, level log.Level) *CharmLogger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
	return &CharmLogger{l: l}
}

// SetLevel adjusts the logger's verbosity after construction, e.g. in
// response to a CLI --verbose flag parsed after the logger was built.
func (c *CharmLogger) SetLevel(level log.Level) {
	c.l.SetLevel(level)
}

// WithField returns a CharmLogger that attaches key/value to every
// message it logs, e.g. a CLI run ID.
func (c *CharmLogger) WithField(key string, value interface{}) *CharmLogger {
	return &CharmLogger{l: c.l.With(key, value)}
}

func (c *CharmLogger) Errorf(format string, args ...interface{}) { c.l.Errorf(format, args...) }
func (c *CharmLogger) Warnf(format string, args ...interface{})  { c.l.Warnf(format, args...) }
func (c *CharmLogger) Infof(format string, args ...interface{})  { c.l.Infof(format, args...) }
func (c *CharmLogger) Debugf(format string, args ...interface{}) { c.l.Debugf(format, args...) }
func (c *CharmLogger) Tracef(format string, args ...interface{}) {
	// charmbracelet/log has no trace level; fold it into debug rather
	// than dropping it silently.
	c.l.Debugf(format, args...)
}

// Progress times a long-running heuristic (LEX-M, MIN-FILL) and
// reports periodic heartbeats plus a final summary, the way
// stacktower's internal/cli/ordering.go reports on its own search
// loop (Initial/Improved/Searching.../final summary).
type Progress struct {
	r         Reporter
	label     string
	start     time.Time
	lastLog   time.Time
	heartbeat time.Duration
}

// NewProgress starts a progress tracker for the named heuristic phase.
func NewProgress(r Reporter, label string, heartbeat time.Duration) *Progress {
	now := time.Now()
	return &Progress{r: Or(r), label: label, start: now, lastLog: now, heartbeat: heartbeat}
}

// Tick reports a heartbeat at most once per heartbeat interval,
// describing how many vertices have been numbered so far out of total.
func (p *Progress) Tick(numbered, total int) {
	if time.Since(p.lastLog) < p.heartbeat {
		return
	}
	p.lastLog = time.Now()
	p.r.Debugf("%s: %d/%d vertices numbered (%s elapsed)", p.label, numbered, total, time.Since(p.start).Round(time.Millisecond))
}

// Done reports completion with total elapsed time.
func (p *Progress) Done() {
	p.r.Infof("%s: done (%s elapsed)", p.label, time.Since(p.start).Round(time.Millisecond))
}
