package tui

import (
	"errors"
	"io"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard receives text copied from the sketch pad.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard writes to the clipboard of the machine running etch.
type SystemClipboard struct{}

// Copy implements Clipboard.
func (SystemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// TerminalClipboard asks the user's terminal to copy the text with an
// OSC 52 escape sequence. It reaches the user's clipboard over SSH.
type TerminalClipboard struct {
	Out io.Writer
}

// Copy implements Clipboard.
func (c TerminalClipboard) Copy(text string) error {
	if c.Out == nil {
		return errors.New("clipboard: no terminal to copy to")
	}
	_, err := osc52.New(text).WriteTo(c.Out)
	return err
}

// defaultClipboard picks the clipboard for a session: the local system
// clipboard, or the terminal's for remote sessions.
func defaultClipboard(remote bool, out io.Writer) Clipboard {
	if remote {
		return TerminalClipboard{Out: out}
	}
	return SystemClipboard{}
}
