package catalog

import (
	_ "embed"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

// MaxNameLength is the longest product name shown before ellipsizing.
const MaxNameLength = 50

const ellipsis = "..."

//go:embed dictionaries.yaml
var defaultDictionaries []byte

type substitution struct {
	Match   string `yaml:"match"`
	Replace string `yaml:"replace"`
}

type descriptionRule struct {
	Any  []string `yaml:"any"`
	All  []string `yaml:"all"`
	Text string   `yaml:"text"`
}

// matches reports whether lower contains every All keyword and, when Any is
// set, at least one Any keyword.
func (r descriptionRule) matches(lower string) bool {
	if len(r.Any) == 0 && len(r.All) == 0 {
		return false
	}
	for _, kw := range r.All {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return true
	}
	for _, kw := range r.Any {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Dictionaries is the data driving the Translator.
type Dictionaries struct {
	Titles        map[string]string `yaml:"titles"`
	Substitutions []substitution    `yaml:"substitutions"`
	Categories    map[string]string `yaml:"categories"`
	Descriptions  struct {
		Rules    []descriptionRule `yaml:"rules"`
		Fallback string            `yaml:"fallback"`
		Empty    string            `yaml:"empty"`
	} `yaml:"descriptions"`
}

// ParseDictionaries decodes a YAML dictionary document.
func ParseDictionaries(b []byte) (Dictionaries, error) {
	var d Dictionaries
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Dictionaries{}, fmt.Errorf("catalog: parse dictionaries: %w", err)
	}
	for i, r := range d.Descriptions.Rules {
		for j := range r.Any {
			d.Descriptions.Rules[i].Any[j] = strings.ToLower(r.Any[j])
		}
		for j := range r.All {
			d.Descriptions.Rules[i].All[j] = strings.ToLower(r.All[j])
		}
	}
	return d, nil
}

type compiledSubstitution struct {
	re      *regexp.Regexp
	replace string
}

// Translator maps RawProduct records to pt-BR DisplayProducts. It is safe for
// concurrent use.
type Translator struct {
	dict       Dictionaries
	categories map[string]string
	subs       []compiledSubstitution
	policy     *bluemonday.Policy
}

// NewTranslator builds a translator from the embedded dictionaries.
func NewTranslator() *Translator {
	d, err := ParseDictionaries(defaultDictionaries)
	if err != nil {
		panic(err)
	}
	return NewTranslatorWith(d)
}

func NewTranslatorWith(d Dictionaries) *Translator {
	t := &Translator{
		dict:       d,
		categories: make(map[string]string, len(d.Categories)),
		policy:     bluemonday.StrictPolicy(),
	}
	for k, v := range d.Categories {
		t.categories[strings.ToLower(k)] = v
	}
	for _, s := range d.Substitutions {
		t.subs = append(t.subs, compiledSubstitution{
			re:      regexp.MustCompile("(?i)" + regexp.QuoteMeta(s.Match)),
			replace: s.Replace,
		})
	}
	return t
}

// Translate is pure: the same input always yields the same output.
func (t *Translator) Translate(p RawProduct) DisplayProduct {
	return DisplayProduct{
		ID:          p.ID,
		Name:        TruncateName(t.Title(p.Title)),
		Price:       p.Price,
		Image:       strings.TrimSpace(p.Image),
		Category:    t.Category(p.Category),
		Description: t.Description(p.Description),
		Rating:      p.RatingOrZero(),
	}
}

// TranslateAll translates products in order.
func (t *Translator) TranslateAll(products []RawProduct) []DisplayProduct {
	out := make([]DisplayProduct, 0, len(products))
	for _, p := range products {
		out = append(out, t.Translate(p))
	}
	return out
}

// Title returns the dictionary entry for an exact match, otherwise applies
// the substitutions in order and leaves everything else as is.
func (t *Translator) Title(title string) string {
	title = t.plain(title)
	if v, ok := t.dict.Titles[title]; ok {
		return v
	}
	for _, s := range t.subs {
		title = s.re.ReplaceAllLiteralString(title, s.replace)
	}
	return title
}

// Category looks up the category case-insensitively; unknown categories
// pass through.
func (t *Translator) Category(category string) string {
	category = t.plain(category)
	if v, ok := t.categories[strings.ToLower(category)]; ok {
		return v
	}
	return category
}

// Description returns the text of the first matching keyword rule, or a
// generic text. Only an empty description gets the short text; blank or
// markup-only input falls through to the rules.
func (t *Translator) Description(desc string) string {
	if desc == "" {
		return t.dict.Descriptions.Empty
	}
	desc = t.plain(desc)
	lower := strings.ToLower(desc)
	for _, r := range t.dict.Descriptions.Rules {
		if r.matches(lower) {
			return r.Text
		}
	}
	return t.dict.Descriptions.Fallback
}

// plain strips markup from untrusted catalog text.
func (t *Translator) plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(t.policy.Sanitize(s)))
}

// TruncateName keeps at most MaxNameLength runes and marks the cut.
func TruncateName(name string) string {
	return truncate(name, MaxNameLength)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + ellipsis
}
