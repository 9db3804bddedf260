package bionic

import (
	"fmt"

	"github.com/joeblew999/plat-bionic/pkg/font"
)

// Settings control one conversion. They do not change while it runs.
type Settings struct {
	// FixationStrength is the percentage of each word set in bold, 1-100.
	FixationStrength int `json:"fixationStrength"`
	// Contrast is the requested weight gap between base and bold, 0-900.
	Contrast int `json:"contrast"`
}

// DefaultSettings returns a medium fixation with a regular-to-bold gap.
func DefaultSettings() Settings {
	return Settings{
		FixationStrength: 50,
		Contrast:         300,
	}
}

// Validate checks both settings are in range.
func (s Settings) Validate() error {
	if s.FixationStrength < 1 || s.FixationStrength > 100 {
		return fmt.Errorf("%w: fixation strength %d not in 1..100", ErrInvalidSettings, s.FixationStrength)
	}
	if s.Contrast < 0 || s.Contrast > font.MaxWeight {
		return fmt.Errorf("%w: contrast %d not in 0..%d", ErrInvalidSettings, s.Contrast, font.MaxWeight)
	}
	return nil
}
