// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/kfca/lattice"
	"github.com/katalvlaran/kfca/semiring"
)

// ErrInvalidSetting is returned for flag, environment or config values
// that cannot be used.
var ErrInvalidSetting = errors.New("kfca: invalid setting")

// Settings is the resolved configuration of one invocation.
type Settings struct {
	Pivot       float64
	Method      lattice.Method
	Workers     int
	MaxConcepts int
	RankDir     string
	Verbose     bool
	Metrics     bool
	DOTPath     string
	SVGPath     string
	PNGPath     string
}

func settingsFrom(v *viper.Viper) (Settings, error) {
	s := Settings{
		Pivot:       v.GetFloat64(keyPivot),
		Workers:     v.GetInt(keyWorkers),
		MaxConcepts: v.GetInt(keyMaxConcepts),
		RankDir:     v.GetString(keyRankDir),
		Verbose:     v.GetBool(keyVerbose),
		Metrics:     v.GetBool(keyMetrics),
		DOTPath:     v.GetString(keyDOT),
		SVGPath:     v.GetString(keySVG),
		PNGPath:     v.GetString(keyPNG),
	}

	m, err := parseMethod(v.GetString(keyMethod))
	if err != nil {
		return Settings{}, err
	}
	s.Method = m

	if s.Workers == 0 {
		s.Workers = lattice.DefaultWorkers()
	}
	if s.Workers < 0 {
		return Settings{}, fmt.Errorf("%w: workers=%d", ErrInvalidSetting, s.Workers)
	}
	if s.MaxConcepts < 0 {
		return Settings{}, fmt.Errorf("%w: max-concepts=%d", ErrInvalidSetting, s.MaxConcepts)
	}
	switch s.RankDir {
	case "BT", "TB", "LR", "RL":
	default:
		return Settings{}, fmt.Errorf("%w: rankdir %q", ErrInvalidSetting, s.RankDir)
	}

	return s, nil
}

func parseMethod(name string) (lattice.Method, error) {
	for _, m := range []lattice.Method{lattice.MethodCanonical, lattice.MethodObjects, lattice.MethodAttributes} {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown method %q (canonical, objects, attributes)", ErrInvalidSetting, name)
}

func parseSemiring(name string) (semiring.Semiring[float64], error) {
	switch name {
	case "maxplus":
		return semiring.MaxPlus{}, nil
	case "minplus":
		return semiring.MinPlus{}, nil
	case "fuzzy":
		return semiring.Fuzzy{}, nil
	}
	return nil, fmt.Errorf("%w: unknown semiring %q (maxplus, minplus, fuzzy)", ErrInvalidSetting, name)
}
