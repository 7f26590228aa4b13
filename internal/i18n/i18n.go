// Package i18n loads the dashboard string tables and resolves the locale of a
// request. The catalog is built once at start-up and passed to whoever renders.
package i18n

import (
	"context"
	"embed"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Supported lists the locales with a string table, in matcher priority order
var Supported = []language.Tag{language.English, language.Russian}

// Catalog holds the loaded string tables
type Catalog struct {
	bundle   *goi18n.Bundle
	matcher  language.Matcher
	fallback language.Tag
}

// New loads the embedded string tables. defaultLang is used when a request
// names no supported locale.
func New(defaultLang string) (*Catalog, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	for _, tag := range Supported {
		filename := fmt.Sprintf("locales/%s.yaml", tag.String())
		if _, err := bundle.LoadMessageFileFS(localeFS, filename); err != nil {
			return nil, fmt.Errorf("failed to load translation file %s: %w", filename, err)
		}
	}

	c := &Catalog{
		bundle:   bundle,
		matcher:  language.NewMatcher(Supported),
		fallback: language.English,
	}
	if defaultLang != "" {
		tag, ok := c.lookup(defaultLang)
		if !ok {
			return nil, fmt.Errorf("unsupported default locale %q", defaultLang)
		}
		c.fallback = tag
	}
	return c, nil
}

// Match returns the first supported locale named by the candidates, which may
// be plain tags ("ru") or Accept-Language values ("ru-RU,ru;q=0.9"). Empty
// candidates are skipped; with no match the default locale is returned.
func (c *Catalog) Match(candidates ...string) language.Tag {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if tag, ok := c.lookup(candidate); ok {
			return tag
		}
	}
	return c.fallback
}

// Default returns the locale used when nothing else matches
func (c *Catalog) Default() language.Tag {
	return c.fallback
}

func (c *Catalog) lookup(value string) (language.Tag, bool) {
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return language.Und, false
	}
	_, idx, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return language.Und, false
	}
	return Supported[idx], true
}

// Localizer returns a translator for tag
func (c *Catalog) Localizer(tag language.Tag) *Localizer {
	return &Localizer{
		tag:       tag,
		localizer: goi18n.NewLocalizer(c.bundle, tag.String()),
	}
}

// Localizer translates message IDs for one locale
type Localizer struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// T translates a message ID, returning the ID itself when no translation exists
func (l *Localizer) T(id string) string {
	if l == nil || id == "" {
		return id
	}
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Lang returns the locale as a BCP 47 string
func (l *Localizer) Lang() string {
	if l == nil {
		return language.English.String()
	}
	return l.tag.String()
}

// Tag returns the locale of the localizer
func (l *Localizer) Tag() language.Tag {
	if l == nil {
		return language.English
	}
	return l.tag
}

type contextKey struct{}

// WithLocalizer stores l in ctx
func WithLocalizer(ctx context.Context, l *Localizer) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the localizer stored in ctx, or nil
func FromContext(ctx context.Context) *Localizer {
	l, _ := ctx.Value(contextKey{}).(*Localizer)
	return l
}
