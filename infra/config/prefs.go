package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Font scale bounds, matching the settings slider.
const (
	MinFontScale     = 0.8
	MaxFontScale     = 1.4
	DefaultFontScale = 1.0
)

// Prefs are the few values that survive restarts. FontScale is kept as a
// string-encoded number under the fixed "fontScale" key, mirroring how the
// browser build stored it in localStorage.
type Prefs struct {
	FontScale  string `yaml:"fontScale,omitempty"`
	FeedSource string `yaml:"feedSource,omitempty"`
}

// LoadPrefs reads the preferences file. A missing file is not an error and
// yields zero prefs; a corrupt file is reported.
func LoadPrefs(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Prefs{}, nil
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("reading prefs: %w", err)
	}
	var p Prefs
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prefs{}, fmt.Errorf("parsing prefs: %w", err)
	}
	return p, nil
}

// SavePrefs writes the preferences file, creating parent directories as
// needed.
func SavePrefs(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating prefs dir: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing prefs: %w", err)
	}
	return nil
}

// FontScaleValue parses the stored multiplier, clamped to the slider bounds.
// Missing or unparseable values fall back to the default.
func (p Prefs) FontScaleValue() float64 {
	v, err := strconv.ParseFloat(p.FontScale, 64)
	if err != nil {
		return DefaultFontScale
	}
	if v < MinFontScale {
		return MinFontScale
	}
	if v > MaxFontScale {
		return MaxFontScale
	}
	return v
}

// SetFontScale stores the multiplier in its string encoding.
func (p *Prefs) SetFontScale(v float64) {
	p.FontScale = strconv.FormatFloat(v, 'g', -1, 64)
}
