package banner

import (
	"regexp"
	"time"
)

const (
	// MobileMaxWidth is the widest viewport treated as mobile.
	MobileMaxWidth = 768
	// ShowDelay is how long the page waits before sliding the banner in.
	ShowDelay = 2 * time.Second
)

var mobileUA = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// IsMobile reports whether the client looks like a phone or tablet. A width
// of 0 means the client did not report one.
func IsMobile(userAgent string, width int) bool {
	if mobileUA.MatchString(userAgent) {
		return true
	}
	return width > 0 && width <= MobileMaxWidth
}

// ShareBanner is the payload for the mobile "share this page" banner.
type ShareBanner struct {
	Show    bool   `json:"show"`
	URL     string `json:"url"`
	DelayMs int64  `json:"delayMs"`
}
