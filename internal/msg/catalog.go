package msg

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"ember/internal/diag"
)

// Catalog is the built-in Store. Templates are grouped per locale; the
// best locale is picked once at construction from the caller's
// preferences (typically LANG / --locale).
type Catalog struct {
	tag       language.Tag
	templates map[Key]string
}

var locales = map[language.Tag]map[Key]string{
	language.English: templatesEN,
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
})

// NewCatalog picks the best matching locale for the given preferences
// and falls back to English.
func NewCatalog(prefs ...string) *Catalog {
	tag, _ := language.MatchStrings(matcher, prefs...)
	base, _, _ := matcher.Match(tag)
	templates, ok := locales[base]
	if !ok {
		templates = templatesEN
	}
	return &Catalog{tag: base, templates: templates}
}

// Locale returns the locale the catalog renders in.
func (c *Catalog) Locale() language.Tag {
	return c.tag
}

// Render resolves the template for key and interpolates args.
//
// Template syntax, kept deliberately small:
//
//	{$name}            value of the argument
//	{$name ? a | b}    a when the bool argument is true, b otherwise
//	{$name # a | b}    a when the count argument equals 1, b otherwise
func (c *Catalog) Render(key Key, args *diag.Args) (string, error) {
	tmpl, ok := c.templates[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, string(key))
	}
	return interpolate(tmpl, key, args)
}

func interpolate(tmpl string, key Key, args *diag.Args) (string, error) {
	var b strings.Builder
	rest := tmpl
	for {
		idx := strings.Index(rest, "{$")
		if idx < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:idx])
		end := strings.IndexByte(rest[idx:], '}')
		if end < 0 {
			return "", fmt.Errorf("message %q: unterminated placeholder", string(key))
		}
		placeholder := rest[idx+2 : idx+end]
		rest = rest[idx+end+1:]

		out, err := expand(placeholder, key, args)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
}

func expand(placeholder string, key Key, args *diag.Args) (string, error) {
	name := placeholder
	op := byte(0)
	var options string
	if cut := strings.IndexAny(placeholder, "?#"); cut >= 0 {
		name = strings.TrimSpace(placeholder[:cut])
		op = placeholder[cut]
		options = placeholder[cut+1:]
	}
	name = strings.TrimSpace(name)

	v, ok := args.Get(name)
	if !ok {
		return "", fmt.Errorf("message %q: missing argument %q", string(key), name)
	}
	switch op {
	case 0:
		return v.Render(), nil
	case '?', '#':
		first, second, found := strings.Cut(options, "|")
		if !found {
			return "", fmt.Errorf("message %q: selector for %q needs two options", string(key), name)
		}
		pick := strings.TrimSpace(second)
		if (op == '?' && v.AsBool()) || (op == '#' && v.AsCount() == 1) {
			pick = strings.TrimSpace(first)
		}
		return pick, nil
	}
	return "", fmt.Errorf("message %q: bad placeholder %q", string(key), placeholder)
}
