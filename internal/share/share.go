package share

import (
	"net/url"
	"strings"
)

const (
	ShareTitle = "ZenBotanic - E-commerce de Plantas"
	ShareText  = "Confira as plantas incríveis da ZenBotanic!"

	whatsAppPrefix = "https://wa.me/?text="
	smsPrefix      = "sms:?body="
	whatsAppText   = "🌿 Confira o ZenBotanic - E-commerce de plantas incríveis! "
	smsText        = "Confira o ZenBotanic: "
)

// NativeShare is the payload for the platform share sheet.
type NativeShare struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Links groups every way of sharing one page URL.
type Links struct {
	URL      string      `json:"url"`
	WhatsApp string      `json:"whatsapp"`
	SMS      string      `json:"sms"`
	Native   NativeShare `json:"native"`
}

// URLFor picks the configured public URL or, when unset, the URL the page
// was requested from.
func URLFor(publicURL, requestURL string) string {
	if u := strings.TrimSpace(publicURL); u != "" {
		return u
	}
	return requestURL
}

func BuildLinks(pageURL string) Links {
	return Links{
		URL:      pageURL,
		WhatsApp: WhatsAppLink(pageURL),
		SMS:      SMSLink(pageURL),
		Native:   NativeShare{Title: ShareTitle, Text: ShareText, URL: pageURL},
	}
}

func WhatsAppLink(pageURL string) string {
	return whatsAppPrefix + EncodeComponent(whatsAppText+pageURL)
}

func SMSLink(pageURL string) string {
	return smsPrefix + EncodeComponent(smsText+pageURL)
}

var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s the way browsers encode a URI component:
// spaces become %20 and !'()* stay literal.
func EncodeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}
