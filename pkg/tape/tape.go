package tape

import (
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/tapeytape/internal/logger"
	"github.com/bastiangx/tapeytape/pkg/config"
	"github.com/bastiangx/tapeytape/pkg/format"
	"github.com/bastiangx/tapeytape/pkg/steno"
	"github.com/charmbracelet/log"
)

// Host is what the tape needs from the steno engine besides the strokes
// themselves.
type Host interface {
	ReverseLookup
	// Owner returns the path of the dictionary defining outline, or "".
	Owner(outline steno.Outline) string
}

type state int

const (
	// idle: every line written so far is terminated.
	idle state = iota
	// pendingFlush: the last line is open and its suggestions wait on the
	// next stroke to tell whether the fingerspelled word is finished.
	pendingFlush
)

// Tape writes one line per stroke. It is not safe for concurrent use; the
// host delivers strokes one at a time.
type Tape struct {
	cfg         *config.Config
	system      *steno.System
	host        Host
	out         io.Writer
	left, right string
	now         func() time.Time
	log         *log.Logger

	state   state
	last    time.Time
	pending format.Items
}

// Option configures a Tape.
type Option func(*Tape)

// WithClock replaces time.Now for strokes that carry no timestamp.
func WithClock(now func() time.Time) Option {
	return func(t *Tape) {
		t.now = now
	}
}

// New creates a tape writing to out. If out has a Flush method it is called
// after every stroke. host may be nil, in which case lines carry neither
// suggestions nor dictionary names.
func New(cfg *config.Config, host Host, out io.Writer, opts ...Option) *Tape {
	t := &Tape{
		cfg:    cfg,
		system: steno.English,
		host:   host,
		out:    out,
		now:    time.Now,
		log:    logger.New("tape"),
	}
	t.left, t.right = format.Split(cfg.LineFormat)
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Pending reports whether the last line is still open.
func (t *Tape) Pending() bool {
	return t.state == pendingFlush
}

// Suppress reports whether suggestions held back for a fingerspelled word
// must be dropped given the stroke that followed it: the stack emptied, the
// word goes on, the stroke is an undo, or the new translation replaced the
// spelled letters.
func Suppress(stroke steno.Stroke, history History) bool {
	if len(history) == 0 || stroke.IsCorrection {
		return true
	}
	top := history[len(history)-1]
	return top.IsFingerspelling() || top.Replaced
}

// OnStroked records one stroke given the translation stack after it.
func (t *Tape) OnStroked(stroke steno.Stroke, history History) error {
	if t.state == pendingFlush {
		if Suppress(stroke, history) {
			t.pending[format.Suggestions] = ""
		}
		if err := t.terminate(t.pending); err != nil {
			return err
		}
	}

	now := stroke.Time
	if now.IsZero() {
		now = t.now()
	}
	items := format.Items{
		format.Time:     now.Format(format.TimeLayout),
		format.Bar:      bar(t.cfg, now.Sub(t.last), t.last.IsZero()),
		format.Steno:    t.system.Layout(stroke.Keys),
		format.RawSteno: stroke.RTFCRE,
		format.Percent:  "%",
	}
	t.last = now

	spelling := false
	if stroke.IsCorrection || len(history) == 0 {
		// An undo shows as a bare star. The entry it uncovers could be
		// called its translation, but reading "*sandbox" after the undo
		// of "intoxication" is more confusing than helpful.
		items[format.Defined] = "*"
		items[format.Translated] = "*"
		items[format.Dictionary] = ""
		items[format.Suggestions] = ""
	} else {
		top := history[len(history)-1]

		// Here the star marks a translation that took several strokes,
		// i.e. one that corrected what came before it.
		star := ""
		if top.StrokeCount() > 1 {
			star = "*"
		}
		if top.English == nil {
			items[format.Defined] = "/"
		} else {
			items[format.Defined] = star + format.ShowWhitespace(*top.English)
		}
		items[format.Translated] = star + format.ShowWhitespace(Retroformat(top))
		items[format.Dictionary] = t.dictionaryName(top)
		items[format.Suggestions] = t.suggestions(history)
		spelling = top.IsFingerspelling()
	}

	if err := t.write(format.Expand(t.left, items)); err != nil {
		return err
	}
	if spelling {
		t.pending = items
		t.state = pendingFlush
	} else if err := t.terminate(items); err != nil {
		return err
	}
	return t.flush()
}

// Close terminates a line left open by a fingerspelled stroke.
func (t *Tape) Close() error {
	if t.state != pendingFlush {
		return nil
	}
	if err := t.terminate(t.pending); err != nil {
		return err
	}
	return t.flush()
}

func (t *Tape) suggestions(history History) string {
	if t.host == nil {
		return ""
	}
	groups := Search(history, t.host, t.cfg.SuggestionWindows)
	t.log.Debug("Suggestions", "groups", len(groups))
	return FormatGroups(groups, t.cfg.SuggestionsMarker)
}

func (t *Tape) dictionaryName(top Translation) string {
	if t.host == nil {
		return ""
	}
	path := t.host.Owner(top.Outline())
	if path == "" {
		return ""
	}
	return t.cfg.DictionaryNames[path]
}

func (t *Tape) terminate(items format.Items) error {
	t.state = idle
	t.pending = nil
	return t.write(format.TrimRight(format.Expand(t.right, items)) + "\n")
}

func (t *Tape) write(s string) error {
	if _, err := io.WriteString(t.out, s); err != nil {
		return fmt.Errorf("write tape: %w", err)
	}
	return nil
}

func (t *Tape) flush() error {
	if f, ok := t.out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush tape: %w", err)
		}
	}
	return nil
}
