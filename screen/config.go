package screen

import (
	"fmt"

	"github.com/BurntSushi/toml"

	ion "github.com/goionics/ionscreen"
)

// Config is a screening profile as stored in a TOML file. It exists so batch
// drivers can keep their screening policy next to the job definition instead
// of hard-coding it; everything here is also settable through Options.
//
//	elements = ["Ti", "Ga"]
//	anion = "O"
//	anion_state = -2
//	threshold = 8
//	reject_ties = false
type Config struct {
	Elements         []string `toml:"elements"`
	Anion            string   `toml:"anion"`
	AnionState       int      `toml:"anion_state"`
	Threshold        int      `toml:"threshold"`
	KeepScaled       bool     `toml:"keep_scaled"`
	NoPauling        bool     `toml:"no_pauling"`
	PaulingThreshold float64  `toml:"pauling_threshold"`
	RejectTies       bool     `toml:"reject_ties"`
	NoRepeatCations  bool     `toml:"no_repeat_cations"`
	NoRepeatAnions   bool     `toml:"no_repeat_anions"`
	CacheSize        int      `toml:"cache_size"`
}

// LoadConfig reads a screening profile from a TOML file.
func LoadConfig(path string) (*Config, error) {
	c := new(Config)
	if _, err := toml.DecodeFile(path, c); err != nil {
		return nil, ion.NewCError(fmt.Sprintf("reading profile %s: %s", path, err.Error()), "LoadConfig")
	}
	if err := c.validate(); err != nil {
		return nil, errDecorate(err, "LoadConfig")
	}
	return c, nil
}

func (c *Config) validate() error {
	if len(c.Elements) == 0 {
		return ion.NewCError("profile lists no elements", "validate")
	}
	if c.Threshold < 0 {
		return ion.NewCError(fmt.Sprintf("negative threshold %d", c.Threshold), "validate")
	}
	if c.Anion == "" && c.AnionState != 0 {
		return ion.NewCError("anion_state given without anion", "validate")
	}
	return nil
}

// Options translates the profile into filter options.
func (c *Config) Options() *Options {
	return &Options{
		Threshold:  c.Threshold,
		KeepScaled: c.KeepScaled,
		NoPauling:  c.NoPauling,
		Pauling: PaulingOptions{
			Threshold:       c.PaulingThreshold,
			RejectTies:      c.RejectTies,
			NoRepeatCations: c.NoRepeatCations,
			NoRepeatAnions:  c.NoRepeatAnions,
		},
		CacheSize: c.CacheSize,
	}
}

// Slots resolves the profile's chemical system against a table. The anion,
// if any, becomes a trailing slot: fixed to anion_state when that is set,
// over the element's own states otherwise.
func (c *Config) Slots(t *ion.Table) ([]Slot, error) {
	slots, err := SlotsFor(t, c.Elements...)
	if err != nil {
		return nil, errDecorate(err, "Slots")
	}
	if c.Anion == "" {
		return slots, nil
	}
	var an Slot
	if c.AnionState != 0 {
		an, err = FixedSlot(t, c.Anion, c.AnionState)
	} else {
		var s []Slot
		s, err = SlotsFor(t, c.Anion)
		if err == nil {
			an = s[0]
		}
	}
	if err != nil {
		return nil, errDecorate(err, "Slots")
	}
	return append(slots, an), nil
}
