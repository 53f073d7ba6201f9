// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and
// synchronously draining returned Cmds, so a test observes the model only
// after every message a key press caused has been applied.
//
// Cmds that do not return within the driver's timeout are abandoned. Models
// under test should disable timers (cursor blink, delayed dismissals) so
// the only slow Cmds left are real I/O, which the timeout must cover.
package teatest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth is the safety limit for command draining to prevent infinite loops.
const MaxDrainDepth = 100

// DefaultCmdTimeout bounds a single Cmd. Loopback HTTP round-trips finish
// well inside it.
const DefaultCmdTimeout = 2 * time.Second

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain.
	Quitting bool

	cmdTimeout time.Duration
	processed  []tea.Msg
	abandoned  int
}

// New creates a Driver for the given model and applies options.
// Call DrainInit() after construction to process the model's Init() command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize sends an initial WindowSizeMsg before any other processing.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// WithCmdTimeout overrides how long a single Cmd may run.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) {
		d.cmdTimeout = timeout
	}
}

// DrainInit executes the model's Init() command and drains all resulting messages.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// ── Core send methods ────────────────────────────────────────────────────────

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	d.apply(msg)
}

// Exec runs cmd as if a model had returned it and drains the result.
func (d *Driver) Exec(cmd tea.Cmd) {
	d.T.Helper()
	d.drainCmd(cmd, 0)
}

// ── Key event helpers ────────────────────────────────────────────────────────

// PressKey sends a character key (rune).
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressType sends a non-rune key such as tea.KeyTab.
func (d *Driver) PressType(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

func (d *Driver) PressEnter() {
	d.T.Helper()
	d.PressType(tea.KeyEnter)
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.PressType(tea.KeyEsc)
}

func (d *Driver) PressTab() {
	d.T.Helper()
	d.PressType(tea.KeyTab)
}

// PressSpace sends a space the way a terminal reports it: KeySpace
// carrying the rune, so text inputs insert it.
func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func (d *Driver) PressBackspace() {
	d.T.Helper()
	d.PressType(tea.KeyBackspace)
}

func (d *Driver) PressUp() {
	d.T.Helper()
	d.PressType(tea.KeyUp)
}

func (d *Driver) PressDown() {
	d.T.Helper()
	d.PressType(tea.KeyDown)
}

func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.PressType(tea.KeyCtrlC)
}

// Type sends a string character by character as individual key events.
// Spaces are sent as tea.KeySpace, the way a terminal reports them.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		if r == ' ' {
			d.PressSpace()
			continue
		}
		d.PressKey(r)
	}
}

// View returns the full rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── Inspection ───────────────────────────────────────────────────────────────

// Processed returns every message fed through Update since construction,
// including those produced by Cmds.
func (d *Driver) Processed() []tea.Msg {
	return d.processed
}

// CountProcessed returns how many processed messages have the same dynamic
// type as sample.
func (d *Driver) CountProcessed(sample tea.Msg) int {
	want := reflect.TypeOf(sample)
	n := 0
	for _, m := range d.processed {
		if reflect.TypeOf(m) == want {
			n++
		}
	}
	return n
}

// Abandoned returns how many Cmds were skipped for exceeding the timeout.
func (d *Driver) Abandoned() int {
	return d.abandoned
}

// ── Command draining ─────────────────────────────────────────────────────────

func (d *Driver) apply(msg tea.Msg) {
	d.T.Helper()
	d.processed = append(d.processed, msg)
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg, ok := d.exec(cmd)
	if !ok || msg == nil || isCursorBlink(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drainCmd(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.processed = append(d.processed, msg)
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	d.processed = append(d.processed, msg)
	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(next, depth+1)
}

// exec runs cmd in a goroutine and waits up to the driver's timeout.
func (d *Driver) exec(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d.cmdTimeout):
		d.abandoned++
		d.T.Logf("teatest.Driver: cmd abandoned after %s", d.cmdTimeout)
		return nil, false
	}
}

// isCursorBlink detects cursor blink messages from the bubbles/cursor package.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
