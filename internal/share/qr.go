package share

import (
	"encoding/base64"
	"errors"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	QRSize = 250

	remoteQRPrefix = "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data="
	remoteQRSuffix = "&color=1b5e20&bgcolor=ffffff&margin=2"

	// PlaceholderQR is the inert image shown when no QR code could be produced.
	PlaceholderQR = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMjUwIiBoZWlnaHQ9IjI1MCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj48cmVjdCB3aWR0aD0iMjUwIiBoZWlnaHQ9IjI1MCIgZmlsbD0iI2U4ZjVlOSIvPjx0ZXh0IHg9IjUwJSIgeT0iNTAlIiBmb250LWZhbWlseT0iQXJpYWwiIGZvbnQtc2l6ZT0iMTQiIGZpbGw9IiMxYjVlMjAiIHRleHQtYW5jaG9yPSJtaWRkbGUiIGR5PSIuM2VtIj7wn5GxIFFSIENvZGU8L3RleHQ+PC9zdmc+"
)

// Sources of a QR image, in fallback order.
const (
	SourceLocal       = "local"
	SourceRemote      = "remote"
	SourcePlaceholder = "placeholder"
)

var qrForeground = color.RGBA{R: 0x1b, G: 0x5e, B: 0x20, A: 0xff}

// Encoder renders content as a PNG QR code.
type Encoder interface {
	PNG(content string, size int) ([]byte, error)
}

// LocalEncoder renders with go-qrcode at medium error correction, dark green
// on white.
type LocalEncoder struct{}

func (LocalEncoder) PNG(content string, size int) ([]byte, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.ForegroundColor = qrForeground
	q.BackgroundColor = color.White
	return q.PNG(size)
}

// Step is one link of a fallback chain.
type Step struct {
	Source string
	Run    func() (string, error)
}

// Result is the outcome of a fallback chain: the first source that
// succeeded, plus the remaining ones in order for clients to walk if
// loading Src fails on their side. Fallback is the first of them.
type Result struct {
	Src       string   `json:"src"`
	Source    string   `json:"source"`
	Fallback  string   `json:"fallback,omitempty"`
	Fallbacks []string `json:"fallbacks,omitempty"`
	Errors    []string `json:"errors,omitempty"`
}

// ErrChainExhausted is returned when no step of a chain succeeded.
var ErrChainExhausted = errors.New("share: every fallback failed")

// Resolve runs steps in order and stops at the first success.
func Resolve(steps ...Step) (Result, error) {
	var res Result
	for i, s := range steps {
		src, err := s.Run()
		if err != nil {
			res.Errors = append(res.Errors, s.Source+": "+err.Error())
			continue
		}
		res.Src, res.Source = src, s.Source
		for _, next := range steps[i+1:] {
			if v, err := next.Run(); err == nil {
				res.Fallbacks = append(res.Fallbacks, v)
			}
		}
		if len(res.Fallbacks) > 0 {
			res.Fallback = res.Fallbacks[0]
		}
		return res, nil
	}
	return res, ErrChainExhausted
}

// RemoteQRURL is the third-party image endpoint for pageURL.
func RemoteQRURL(pageURL string) string {
	return remoteQRPrefix + EncodeComponent(pageURL) + remoteQRSuffix
}

// QRCode builds the QR chain for pageURL: a locally rendered PNG data URI,
// then the remote image, then the static placeholder. enc may be nil.
func QRCode(pageURL string, enc Encoder) Result {
	res, _ := Resolve(
		Step{Source: SourceLocal, Run: func() (string, error) {
			if enc == nil {
				return "", errors.New("no local encoder")
			}
			png, err := enc.PNG(pageURL, QRSize)
			if err != nil {
				return "", err
			}
			return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
		}},
		Step{Source: SourceRemote, Run: func() (string, error) {
			if pageURL == "" {
				return "", errors.New("empty url")
			}
			return RemoteQRURL(pageURL), nil
		}},
		Step{Source: SourcePlaceholder, Run: func() (string, error) {
			return PlaceholderQR, nil
		}},
	)
	return res
}
