package share

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

const (
	CopiedMessage         = "✅ Link copiado! Cole onde quiser compartilhar."
	CopiedFallbackMessage = "✅ Link copiado!"
	CopyFailedMessage     = "❌ Erro ao copiar. Tente selecionar e copiar manualmente."
)

// ErrClipboardUnavailable is returned when the host has no clipboard.
var ErrClipboardUnavailable = errors.New("share: clipboard unavailable")

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// TerminalClipboard asks the terminal to set its clipboard with an OSC 52
// sequence. It works over SSH where no system clipboard is reachable.
type TerminalClipboard struct {
	W io.Writer
}

func (t TerminalClipboard) WriteAll(text string) error {
	if t.W == nil {
		return ErrClipboardUnavailable
	}
	_, err := fmt.Fprintf(t.W, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

// CopyResult reports how a copy went. When Copied is false, Manual holds the
// text for the user to select and copy by hand.
type CopyResult struct {
	Copied  bool   `json:"copied"`
	Message string `json:"message"`
	Manual  string `json:"manual,omitempty"`
}

// Copy tries primary, then fallback. Either may be nil.
func Copy(text string, primary, fallback Clipboard) CopyResult {
	if primary != nil && primary.WriteAll(text) == nil {
		return CopyResult{Copied: true, Message: CopiedMessage}
	}
	if fallback != nil && fallback.WriteAll(text) == nil {
		return CopyResult{Copied: true, Message: CopiedFallbackMessage}
	}
	return CopyResult{Message: CopyFailedMessage, Manual: text}
}
