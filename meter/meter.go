// Package meter renders a live per-voice terminal display of VSU state
// using tcell: each voice gets one row showing its enable state, left and
// right volume, and current envelope level as a bar.
package meter

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/vbdev/vbvsu-go/debug"
)

const (
	barWidth   = 15
	rowHeight  = 1
	labelWidth = 10
)

// Meter owns a tcell screen and redraws a Snapshot to it on demand.
type Meter struct {
	screen tcell.Screen
}

// Open initializes the terminal screen for meter display.
func Open() (*Meter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("meter: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("meter: init screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	slog.Info("meter terminal initialized")
	return &Meter{screen: screen}, nil
}

// Close releases the terminal screen.
func (m *Meter) Close() {
	m.screen.Fini()
}

// PollQuit reports whether the user pressed Escape or Ctrl-C since the
// last call, draining any other pending input.
func (m *Meter) PollQuit() bool {
	for m.screen.HasPendingEvent() {
		switch ev := m.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return true
			}
		case *tcell.EventResize:
			m.screen.Sync()
		}
	}
	return false
}

// Render draws one frame of the six-voice meter from snap.
func (m *Meter) Render(snap debug.Snapshot) {
	m.screen.Clear()

	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	title := " Virtual Sound Unit "
	for i, ch := range title {
		m.screen.SetContent(i, 0, ch, nil, labelStyle)
	}

	for i, voice := range snap.Voices {
		y := i*rowHeight + 2
		m.renderVoiceRow(y, voice)
	}

	m.screen.Show()
}

func (m *Meter) renderVoiceRow(y int, voice debug.VoiceSnapshot) {
	enabledStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	disabledStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	style := disabledStyle
	state := "off"
	if voice.Enabled {
		style = enabledStyle
		state = "on "
	}

	label := fmt.Sprintf("v%d [%s]", voice.Index, state)
	x := 0
	for _, ch := range label {
		m.screen.SetContent(x, y, ch, nil, style)
		x++
	}

	x = labelWidth
	filled := int(voice.EnvelopeLevel) * barWidth / 15
	for i := 0; i < barWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		m.screen.SetContent(x+i, y, ch, nil, style)
	}

	info := fmt.Sprintf(" L:%-2d R:%-2d env:%-2d", voice.VolumeLeft, voice.VolumeRight, voice.EnvelopeLevel)
	x = labelWidth + barWidth + 1
	for _, ch := range info {
		m.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
