// Package clipboard copies proposal text to the system or terminal clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	sysclip "github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// ErrUnavailable is returned when no system clipboard utility can be used.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Clipboard modes accepted in config.
const (
	ModeAuto   = "auto"
	ModeSystem = "system"
	ModeOSC52  = "osc52"
)

// Writer places text on a clipboard.
type Writer interface {
	Write(text string) error
}

// New returns the Writer for a configured mode. term receives OSC 52 sequences.
func New(mode string, term io.Writer) (Writer, error) {
	switch mode {
	case ModeAuto, "":
		return Auto{Primary: System{}, Fallback: NewOSC52(term)}, nil
	case ModeSystem:
		return System{}, nil
	case ModeOSC52:
		return NewOSC52(term), nil
	default:
		return nil, fmt.Errorf("unknown clipboard mode %q (want auto, system or osc52)", mode)
	}
}

// System writes through the OS clipboard (pbcopy, xclip, xsel, wl-copy, clip.exe).
type System struct{}

// Write implements Writer.
func (System) Write(text string) error {
	if sysclip.Unsupported {
		return ErrUnavailable
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	return nil
}

// OSC52 asks the terminal emulator to set its clipboard. Works over SSH.
type OSC52 struct {
	Out    io.Writer
	Tmux   bool
	Screen bool
}

// NewOSC52 returns an OSC52 writer, wrapping for tmux or screen when detected.
func NewOSC52(out io.Writer) OSC52 {
	return OSC52{
		Out:    out,
		Tmux:   os.Getenv("TMUX") != "",
		Screen: os.Getenv("STY") != "",
	}
}

// Write implements Writer.
func (o OSC52) Write(text string) error {
	if o.Out == nil {
		return errors.New("osc52: no terminal to write to")
	}

	seq := osc52.New(text)
	switch {
	case o.Tmux:
		seq = seq.Tmux()
	case o.Screen:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(o.Out); err != nil {
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	return nil
}

// Auto tries Primary and falls back when it fails.
type Auto struct {
	Primary  Writer
	Fallback Writer
}

// Write implements Writer. Both errors are reported if both writers fail.
func (a Auto) Write(text string) error {
	_, err := a.write(text)
	return err
}

func (a Auto) write(text string) (Target, error) {
	err := a.Primary.Write(text)
	if err == nil {
		return targetOf(a.Primary), nil
	}
	if a.Fallback == nil {
		return TargetSystem, err
	}
	if fbErr := a.Fallback.Write(text); fbErr != nil {
		return TargetSystem, errors.Join(err, fbErr)
	}
	return targetOf(a.Fallback), nil
}

// Target tells where a copy went.
type Target int

const (
	// TargetSystem means the OS clipboard accepted the text.
	TargetSystem Target = iota
	// TargetTerminal means an OSC 52 sequence was sent. The terminal may
	// still ignore it, so callers should not promise the clipboard was set.
	TargetTerminal
)

func targetOf(w Writer) Target {
	if _, ok := w.(OSC52); ok {
		return TargetTerminal
	}
	return TargetSystem
}

// Copy writes text through w and reports where it went.
func Copy(w Writer, text string) (Target, error) {
	if a, ok := w.(Auto); ok {
		return a.write(text)
	}
	return targetOf(w), w.Write(text)
}
