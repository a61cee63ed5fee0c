package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// ErrSeparatorInvalid indicates the locale separator is empty or longer than one character.
var ErrSeparatorInvalid = errors.New("translatable config: separator must be a single character")

// ErrDefaultLocaleRequired indicates no fallback locale was configured.
var ErrDefaultLocaleRequired = errors.New("translatable config: default locale is required")

// ErrLocalesRequired indicates the locale list is empty.
var ErrLocalesRequired = errors.New("translatable config: at least one locale is required")

// DefaultSeparator joins language and region subtags when none is configured.
const DefaultSeparator = "-"

// Config aggregates the locale catalogue input and the global fallback
// behaviour. Fields intentionally use simple types so host applications can
// embed this struct in their own configuration files.
type Config struct {
	Locales             []LocaleEntry `yaml:"locales"`
	Separator           string        `yaml:"separator"`
	DefaultLocale       string        `yaml:"default_locale"`
	UseFallback         bool          `yaml:"use_fallback"`
	UsePerFieldFallback bool          `yaml:"use_per_field_fallback"`
}

// LocaleEntry is one item of the configured locale list. A plain code
// registers a simple locale; a code with regions registers the language plus
// one region-qualified locale per region.
type LocaleEntry struct {
	Code    string
	Regions []string
}

// UnmarshalYAML accepts both list shapes:
//
//	locales: [en, fr]
//	locales:
//	  - en
//	  - es: [MX, CO]
func (e *LocaleEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var code string
		if err := node.Decode(&code); err != nil {
			return err
		}
		e.Code = code
		e.Regions = nil
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("translatable config: locale group must map one language to its regions")
		}
		var code string
		if err := node.Content[0].Decode(&code); err != nil {
			return err
		}
		var regions []string
		if err := node.Content[1].Decode(&regions); err != nil {
			return err
		}
		e.Code = code
		e.Regions = regions
		return nil
	default:
		return fmt.Errorf("translatable config: locale entry must be a string or a language-to-regions map")
	}
}

// MarshalYAML renders the entry back in the shape it was declared in.
func (e LocaleEntry) MarshalYAML() (any, error) {
	if len(e.Regions) == 0 {
		return e.Code, nil
	}
	return map[string][]string{e.Code: e.Regions}, nil
}

// Validate checks the configuration shape before a catalogue is built from it.
// Catalogue-level problems (duplicates, empty regions) surface when the
// catalogue itself is constructed.
func (c Config) Validate() error {
	errs := validation.Errors{}
	if utf8.RuneCountInString(c.Separator) != 1 {
		errs["separator"] = validation.NewError(
			"translatable.config.separator_invalid", ErrSeparatorInvalid.Error())
	}
	if strings.TrimSpace(c.DefaultLocale) == "" {
		errs["default_locale"] = validation.NewError(
			"translatable.config.default_locale_required", ErrDefaultLocaleRequired.Error())
	}
	if len(c.Locales) == 0 {
		errs["locales"] = validation.NewError(
			"translatable.config.locales_required", ErrLocalesRequired.Error())
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DefaultConfig returns the baseline configuration: English only, dash
// separator, whole-bundle fallback on, per-field fallback off.
func DefaultConfig() Config {
	return Config{
		Locales:             []LocaleEntry{{Code: "en"}},
		Separator:           DefaultSeparator,
		DefaultLocale:       "en",
		UseFallback:         true,
		UsePerFieldFallback: false,
	}
}
