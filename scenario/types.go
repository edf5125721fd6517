// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: YAML records of a scenario file.

package scenario

import "errors"

var (
	// ErrInvalidScenario is returned when a document cannot be decoded or
	// fails validation.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrUnknownReference is returned when a record names a territory or
	// actor that the scenario does not declare.
	ErrUnknownReference = errors.New("scenario: unknown reference")

	// ErrRejected is returned when the world refuses a record, e.g. a
	// duplicate road or a home held by another actor.
	ErrRejected = errors.New("scenario: record rejected")
)

// Scenario is the root document.
type Scenario struct {
	Engine      Engine      `yaml:"engine"`
	Storage     Storage     `yaml:"storage"`
	Grid        *Grid       `yaml:"grid"`
	Territories []Territory `yaml:"territories" validate:"dive"`
	Roads       []Road      `yaml:"roads" validate:"dive"`
	Actors      []Actor     `yaml:"actors" validate:"dive"`
	Alliances   []Alliance  `yaml:"alliances" validate:"dive"`
}

// Engine configures the alliance engine. Zero values keep the defaults.
type Engine struct {
	FallbackMin float64 `yaml:"fallback_min" validate:"omitempty,gt=0,lte=1"`
	FallbackMax float64 `yaml:"fallback_max" validate:"omitempty,gt=0,lte=1"`
	PathPolicy  string  `yaml:"path_policy" validate:"omitempty,oneof=power hops"`
	// Seed makes fallback draws reproducible.
	Seed *uint64 `yaml:"seed"`
}

// Storage selects graph backings.
type Storage struct {
	DenseRoads bool `yaml:"dense_roads"`
}

// Grid generates territories named "x,y" and their roads from a terrain
// grid before the explicit records are applied. Connectivity is 4
// (default) or 8.
type Grid struct {
	Cells         [][]int  `yaml:"cells" validate:"required,min=1"`
	Connectivity  int      `yaml:"connectivity" validate:"omitempty,oneof=4 8"`
	LandThreshold *int     `yaml:"land_threshold"`
	RoadCost      *float64 `yaml:"road_cost" validate:"omitempty,gte=0"`
}

type Territory struct {
	Name string  `yaml:"name" validate:"required"`
	Cost float64 `yaml:"cost" validate:"gte=0"`
}

type Road struct {
	From string  `yaml:"from" validate:"required"`
	To   string  `yaml:"to" validate:"required"`
	Cost float64 `yaml:"cost" validate:"gte=0"`
}

// Actor starts on Home and additionally holds every territory in Holdings.
type Actor struct {
	Name     string   `yaml:"name" validate:"required"`
	Strength float64  `yaml:"strength" validate:"gte=0"`
	Home     string   `yaml:"home" validate:"required"`
	Holdings []string `yaml:"holdings" validate:"dive,required"`
}

// Alliance is inserted as given, or proposed through the engine when
// Propose is set (Private, Compatibility and Power are then ignored). A
// missing Power is (strength(A)+strength(B)) * Compatibility.
type Alliance struct {
	A             string   `yaml:"a" validate:"required"`
	B             string   `yaml:"b" validate:"required,nefield=A"`
	Private       bool     `yaml:"private"`
	Compatibility float64  `yaml:"compatibility" validate:"gte=0,lte=1"`
	Power         *float64 `yaml:"power" validate:"omitempty,gte=0"`
	Propose       bool     `yaml:"propose"`
}
