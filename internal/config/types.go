package config

import (
	"fmt"
	"strconv"
	"time"
)

// Config is a gallery document: a theme and pages of component instances.
type Config struct {
	Version     string            `yaml:"version" validate:"required,semver"`
	Title       string            `yaml:"title" validate:"required,min=1,max=100"`
	Description string            `yaml:"description,omitempty"`
	Theme       map[string]string `yaml:"theme,omitempty" validate:"omitempty,dive,keys,css_var,endkeys,required"`
	Settings    Settings          `yaml:"settings,omitempty"`
	Pages       []Page            `yaml:"pages" validate:"required,min=1,dive"`
}

// Settings holds rendering parameters shared by every page.
type Settings struct {
	// Now pins the clock used for date-dependent components. It is RFC 3339.
	Now        string `yaml:"now,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Stylesheet string `yaml:"stylesheet,omitempty"`
	Lang       string `yaml:"lang,omitempty" validate:"omitempty,bcp47_language_tag"`
}

// Clock returns the pinned time, or the zero time when unset.
func (s Settings) Clock() time.Time {
	if s.Now == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s.Now)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Page groups component instances under one heading.
type Page struct {
	ID         string     `yaml:"id" validate:"required,slug"`
	Title      string     `yaml:"title" validate:"required"`
	Components []Instance `yaml:"components" validate:"required,min=1,dive"`
}

// Instance is one component to render with its props.
type Instance struct {
	Kind  string `yaml:"kind" validate:"required,component_kind"`
	ID    string `yaml:"id" validate:"required,slug"`
	Props Props  `yaml:"props,omitempty"`
}

// Props are free-form instance settings. Readers fall back to a default when
// a key is missing or holds a value of the wrong shape.
type Props map[string]any

// String returns the prop as a string.
func (p Props) String(key, fallback string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case int, float64, bool:
		return fmt.Sprint(v)
	}
	return fallback
}

// Bool returns the prop as a bool.
func (p Props) Bool(key string, fallback bool) bool {
	switch v := p[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// Int returns the prop as an int.
func (p Props) Int(key string, fallback int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// Float returns the prop as a float64.
func (p Props) Float(key string, fallback float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// Strings returns the prop as a list of strings. Scalars become a
// one-element list.
func (p Props) Strings(key string) []string {
	switch v := p[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case []string:
		return v
	case string:
		return []string{v}
	}
	return nil
}

// Items returns the prop as a list of nested prop maps, for list-valued
// settings such as tabs or menu entries.
func (p Props) Items(key string) []Props {
	list, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Props, 0, len(list))
	for _, item := range list {
		switch m := item.(type) {
		case map[string]any:
			out = append(out, Props(m))
		case string:
			out = append(out, Props{"label": m})
		}
	}
	return out
}
