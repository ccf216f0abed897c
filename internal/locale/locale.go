// Package locale implements the localization collaborators consumed by the
// calculator core: regional settings, the string catalog and the long-date
// formatter factory. Defaults are en-US; a YAML file overrides them.
package locale

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guilherme-santos/datecalc"
)

const Gregorian = "gregorian"

// Config mirrors the on-disk locale file.
type Config struct {
	CalendarIdentifier string `yaml:"calendar_identifier"`
	ListSeparator      string `yaml:"list_separator"`
	// NumberingSystem selects the digit set used for numbers, e.g. "latn"
	// or "arab".
	NumberingSystem string `yaml:"numbering_system"`
	// LongDateFormat is a Go reference-time layout without clock fields.
	LongDateFormat string            `yaml:"long_date_format"`
	Strings        map[string]string `yaml:"strings"`
}

// numberingSystems maps a numbering-system name to its digits for 0 to 9.
var numberingSystems = map[string]string{
	"latn": "0123456789",
	"arab": "٠١٢٣٤٥٦٧٨٩",
	"beng": "০১২৩৪৫৬৭৮৯",
	"deva": "०१२३४५६७८९",
	"thai": "๐๑๒๓๔๕๖๗๘๙",
}

func defaultConfig() Config {
	return Config{
		CalendarIdentifier: Gregorian,
		ListSeparator:      ",",
		NumberingSystem:    "latn",
		LongDateFormat:     "Monday, January 2, 2006",
		Strings: map[string]string{
			datecalc.KeySameDates:                      "Same dates",
			datecalc.KeyOutOfBoundMessage:              "Date out of bound",
			datecalc.KeyYear:                           "year",
			datecalc.KeyYears:                          "years",
			datecalc.KeyMonth:                          "month",
			datecalc.KeyMonths:                         "months",
			datecalc.KeyWeek:                           "week",
			datecalc.KeyWeeks:                          "weeks",
			datecalc.KeyDay:                            "day",
			datecalc.KeyDays:                           "days",
			datecalc.KeyDifferenceResultAutomationName: "Difference: %s",
			datecalc.KeyResultingDateAutomationName:    "Resulting date: %s",
		},
	}
}

type Settings struct {
	cfg    Config
	digits []rune
}

// Default returns en-US settings.
func Default() *Settings {
	s, err := build(defaultConfig())
	if err != nil {
		panic(fmt.Sprintf("locale: building defaults: %v", err))
	}
	return s
}

// Load reads a YAML locale file and applies it on top of the defaults.
// Catalog entries missing from the file keep their default text.
func Load(filename string) (*Settings, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := defaultConfig()
	defaults := cfg.Strings
	cfg.Strings = nil
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parsing locale file: %w", err)
	}
	for key, text := range defaults {
		if _, ok := cfg.Strings[key]; !ok {
			if cfg.Strings == nil {
				cfg.Strings = map[string]string{}
			}
			cfg.Strings[key] = text
		}
	}
	return build(cfg)
}

func build(cfg Config) (*Settings, error) {
	if cfg.CalendarIdentifier != Gregorian {
		return nil, fmt.Errorf("unsupported calendar %q", cfg.CalendarIdentifier)
	}
	digits, ok := numberingSystems[cfg.NumberingSystem]
	if !ok {
		return nil, fmt.Errorf("unknown numbering system %q", cfg.NumberingSystem)
	}
	return &Settings{cfg: cfg, digits: []rune(digits)}, nil
}

func (s *Settings) CalendarIdentifier() string {
	return s.cfg.CalendarIdentifier
}

func (s *Settings) ListSeparator() string {
	return s.cfg.ListSeparator
}

// LocalizeDigits rewrites ASCII digits into the configured numbering system.
// Non-digit runes pass through untouched.
func (s *Settings) LocalizeDigits(in string) string {
	var b strings.Builder
	b.Grow(len(in))
	for _, r := range in {
		if r >= '0' && r <= '9' {
			r = s.digits[r-'0']
		}
		b.WriteRune(r)
	}
	return b.String()
}

// String resolves a catalog key. A missing key is a programming error, not a
// runtime condition: it panics rather than inventing fallback text.
func (s *Settings) String(key string) string {
	text, ok := s.cfg.Strings[key]
	if !ok {
		panic(fmt.Sprintf("locale: missing string %q", key))
	}
	return text
}

// LongDateFormatter builds the date formatter for calendarID. Only the
// Gregorian calendar is supported.
func (s *Settings) LongDateFormatter(calendarID string) (datecalc.DateFormatter, error) {
	if calendarID != Gregorian {
		return nil, fmt.Errorf("unsupported calendar %q", calendarID)
	}
	return longDateFormatter{layout: s.cfg.LongDateFormat}, nil
}

type longDateFormatter struct {
	layout string
}

func (f longDateFormatter) Format(d datecalc.Date) string {
	return d.Time.Format(f.layout)
}

var (
	_ datecalc.Settings             = (*Settings)(nil)
	_ datecalc.Catalog              = (*Settings)(nil)
	_ datecalc.DateFormatterFactory = (*Settings)(nil)
)
