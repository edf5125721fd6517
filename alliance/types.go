// SPDX-License-Identifier: MIT

package alliance

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/conquest/world"
)

var (
	// ErrSelfAlliance is returned when both proposal members are the same actor.
	ErrSelfAlliance = errors.New("alliance: actor cannot ally with itself")

	// ErrActorNotFound is returned when an actor is not a member of the actor graph.
	ErrActorNotFound = errors.New("alliance: actor not found")

	// ErrAllianceExists is returned when the pair is already allied.
	ErrAllianceExists = errors.New("alliance: alliance already exists")

	// ErrNoFeasibleAlly is returned when no ally can support the conquest.
	ErrNoFeasibleAlly = errors.New("alliance: no feasible ally")

	// ErrBadFallbackRange is returned for an empty or non-positive fallback range.
	ErrBadFallbackRange = errors.New("alliance: invalid fallback range")
)

// Rand is the randomness source for the fallback factor.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// globalRand draws from the math/rand/v2 global source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// PathPolicy selects the weights used for the shortest alliance path.
type PathPolicy int

const (
	// PowerAsCost minimizes the summed alliance power along the path.
	PowerAsCost PathPolicy = iota
	// HopCount minimizes the number of alliances along the path.
	HopCount
)

// String implements fmt.Stringer.
func (p PathPolicy) String() string {
	switch p {
	case PowerAsCost:
		return "power"
	case HopCount:
		return "hops"
	default:
		return fmt.Sprintf("PathPolicy(%d)", int(p))
	}
}

// ParsePathPolicy maps "power" and "hops" to their policies.
func ParsePathPolicy(s string) (PathPolicy, error) {
	switch s {
	case "", "power":
		return PowerAsCost, nil
	case "hops":
		return HopCount, nil
	}

	return 0, fmt.Errorf("alliance: unknown path policy %q", s)
}

// Default fallback factor range.
const (
	DefaultFallbackMin = 0.1
	DefaultFallbackMax = 1.0
)

// Option configures an Engine.
type Option func(*Engine)

// WithRand injects the fallback randomness source. nil keeps the default.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rnd = r
		}
	}
}

// WithFallbackRange sets the fallback factor range [min, max).
// Requires 0 < min < max ≤ 1.
func WithFallbackRange(min, max float64) Option {
	return func(e *Engine) {
		if !(min > 0 && min < max && max <= 1) {
			e.err = fmt.Errorf("%w: [%v, %v)", ErrBadFallbackRange, min, max)
			return
		}
		e.min, e.max = min, max
	}
}

// WithPathPolicy selects the alliance-path weighting.
func WithPathPolicy(p PathPolicy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// Conquest is the winning ally/route pair of BestAllyForConquest.
type Conquest struct {
	// Cost is the final approach cost: last road cost + destination Cost.
	Cost float64
	// Ally is the supporting actor and Alliance the edge that links it.
	Ally     *world.Actor
	Alliance *world.Alliance
	// Route runs from one of the actor's territories to the destination
	// inside the ally's restricted world.
	Route    []*world.Territory
	Distance float64
}
