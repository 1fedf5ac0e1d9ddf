package share

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a b", "a%20b"},
		{"https://x.com/?a=1&b=2", "https%3A%2F%2Fx.com%2F%3Fa%3D1%26b%3D2"},
		{"it's (ok)!*~", "it's%20(ok)!*~"},
		{"🌿", "%F0%9F%8C%BF"},
	}
	for _, tt := range tests {
		if got := EncodeComponent(tt.in); got != tt.want {
			t.Errorf("EncodeComponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildLinks(t *testing.T) {
	l := BuildLinks("https://shop.example.com/")
	if l.WhatsApp != "https://wa.me/?text=%F0%9F%8C%BF%20Confira%20o%20ZenBotanic%20-%20E-commerce%20de%20plantas%20incr%C3%ADveis!%20https%3A%2F%2Fshop.example.com%2F" {
		t.Fatalf("unexpected whatsapp link %q", l.WhatsApp)
	}
	if l.SMS != "sms:?body=Confira%20o%20ZenBotanic%3A%20https%3A%2F%2Fshop.example.com%2F" {
		t.Fatalf("unexpected sms link %q", l.SMS)
	}
	if l.Native.Title != ShareTitle || l.Native.URL != "https://shop.example.com/" {
		t.Fatalf("unexpected native payload %+v", l.Native)
	}
}

func TestURLFor(t *testing.T) {
	if got := URLFor("https://pub.example", "http://localhost:8080/"); got != "https://pub.example" {
		t.Fatalf("expected public url, got %q", got)
	}
	if got := URLFor("  ", "http://localhost:8080/"); got != "http://localhost:8080/" {
		t.Fatalf("expected request url, got %q", got)
	}
}

type failingEncoder struct{}

func (failingEncoder) PNG(string, int) ([]byte, error) { return nil, errors.New("canvas unavailable") }

func TestQRCode_Chain(t *testing.T) {
	local := QRCode("https://shop.example.com/", LocalEncoder{})
	if local.Source != SourceLocal || !strings.HasPrefix(local.Src, "data:image/png;base64,") {
		t.Fatalf("expected local png, got %+v", local.Source)
	}
	if local.Fallback != RemoteQRURL("https://shop.example.com/") {
		t.Fatalf("expected remote fallback, got %q", local.Fallback)
	}
	if len(local.Fallbacks) != 2 || local.Fallbacks[1] != PlaceholderQR {
		t.Fatalf("expected remote then placeholder fallbacks, got %v", local.Fallbacks)
	}

	remote := QRCode("https://shop.example.com/", failingEncoder{})
	if remote.Source != SourceRemote {
		t.Fatalf("expected remote source, got %q", remote.Source)
	}
	want := "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=https%3A%2F%2Fshop.example.com%2F&color=1b5e20&bgcolor=ffffff&margin=2"
	if remote.Src != want {
		t.Fatalf("unexpected remote url %q", remote.Src)
	}
	if remote.Fallback != PlaceholderQR || len(remote.Errors) != 1 {
		t.Fatalf("unexpected fallback state %+v", remote)
	}

	placeholder := QRCode("", nil)
	if placeholder.Source != SourcePlaceholder || placeholder.Src != PlaceholderQR {
		t.Fatalf("expected placeholder, got %+v", placeholder)
	}
}

func TestResolve_Exhausted(t *testing.T) {
	_, err := Resolve(Step{Source: "a", Run: func() (string, error) { return "", errors.New("x") }})
	if !errors.Is(err, ErrChainExhausted) {
		t.Fatalf("expected ErrChainExhausted, got %v", err)
	}
}

type memClipboard struct {
	text string
	err  error
}

func (m *memClipboard) WriteAll(text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

func TestCopy_Chain(t *testing.T) {
	primary := &memClipboard{}
	res := Copy("https://x", primary, nil)
	if !res.Copied || res.Message != CopiedMessage || primary.text != "https://x" {
		t.Fatalf("unexpected primary result %+v", res)
	}

	broken := &memClipboard{err: ErrClipboardUnavailable}
	var buf bytes.Buffer
	res = Copy("https://x", broken, TerminalClipboard{W: &buf})
	if !res.Copied || res.Message != CopiedFallbackMessage {
		t.Fatalf("unexpected fallback result %+v", res)
	}
	if buf.String() != "\x1b]52;c;aHR0cHM6Ly94\a" {
		t.Fatalf("unexpected osc52 sequence %q", buf.String())
	}

	res = Copy("https://x", broken, TerminalClipboard{})
	if res.Copied || res.Message != CopyFailedMessage || res.Manual != "https://x" {
		t.Fatalf("unexpected failure result %+v", res)
	}
}
