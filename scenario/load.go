// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/conquest/alliance"
	"github.com/katalvlaran/conquest/gridgraph"
)

var validate = validator.New()

// Load decodes and validates a scenario document. Unknown keys are errors.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadFile reads the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Validate checks field constraints, the engine fallback range and the grid
// shape.
func (s *Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, formatValidationError(err))
	}
	if _, err := s.Engine.options(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if s.Grid != nil {
		if _, err := gridgraph.NewGridGraph(s.Grid.Cells, s.Grid.options()); err != nil {
			return fmt.Errorf("%w: grid: %v", ErrInvalidScenario, err)
		}
	}

	return nil
}

// options translates the engine section; unset fields keep engine defaults.
func (e Engine) options() ([]alliance.Option, error) {
	var opts []alliance.Option
	if e.FallbackMin != 0 || e.FallbackMax != 0 {
		lo, hi := e.FallbackMin, e.FallbackMax
		if lo == 0 {
			lo = alliance.DefaultFallbackMin
		}
		if hi == 0 {
			hi = alliance.DefaultFallbackMax
		}
		if lo >= hi {
			return nil, fmt.Errorf("%w: [%v, %v)", alliance.ErrBadFallbackRange, lo, hi)
		}
		opts = append(opts, alliance.WithFallbackRange(lo, hi))
	}
	p, err := alliance.ParsePathPolicy(e.PathPolicy)
	if err != nil {
		return nil, err
	}
	opts = append(opts, alliance.WithPathPolicy(p))
	if e.Seed != nil {
		opts = append(opts, alliance.WithRand(rand.New(rand.NewPCG(*e.Seed, *e.Seed))))
	}

	return opts, nil
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	field := strings.TrimPrefix(e.Namespace(), "Scenario.")
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "nefield":
		return fmt.Errorf("%s: must differ from %s", field, e.Param())
	default:
		if e.Param() != "" {
			return fmt.Errorf("%s: validation failed (%s=%s)", field, e.Tag(), e.Param())
		}
		return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
	}
}
