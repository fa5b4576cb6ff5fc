package boxer

import (
	"errors"
	"fmt"
)

// Weight class cutoffs in pounds.
const (
	minWeight          = 125
	featherweightFloor = 125
	lightweightFloor   = 133
	middleweightFloor  = 166
	heavyweightFloor   = 203

	minAge = 18
	maxAge = 40
)

// Weight class names reported to clients.
const (
	ClassHeavyweight   = "HEAVYWEIGHT"
	ClassMiddleweight  = "MIDDLEWEIGHT"
	ClassLightweight   = "LIGHTWEIGHT"
	ClassFeatherweight = "FEATHERWEIGHT"
)

var (
	// ErrNotFound signals a lookup for a boxer that does not exist.
	ErrNotFound = errors.New("boxer not found")
	// ErrDuplicateName signals a create with a name already on file.
	ErrDuplicateName = errors.New("boxer name already exists")
)

// Boxer is a fighter on file. WeightClass is derived from Weight and never stored.
type Boxer struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Height      int     `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"`
}

// NewBoxer carries the attributes required to register a boxer.
type NewBoxer struct {
	Name   string  `json:"name"`
	Weight int     `json:"weight"`
	Height int     `json:"height"`
	Reach  float64 `json:"reach"`
	Age    int     `json:"age"`
}

// Validate checks the registration constraints: minimum fighting weight,
// positive height and reach, age within the sanctioned window.
func (n NewBoxer) Validate() error {
	if n.Name == "" {
		return errors.New("name must not be empty")
	}
	if n.Weight < minWeight {
		return fmt.Errorf("invalid weight: %d. Must be at least %d", n.Weight, minWeight)
	}
	if n.Height <= 0 {
		return fmt.Errorf("invalid height: %d. Must be greater than 0", n.Height)
	}
	if n.Reach <= 0 {
		return fmt.Errorf("invalid reach: %.1f. Must be greater than 0", n.Reach)
	}
	if n.Age < minAge || n.Age > maxAge {
		return fmt.Errorf("invalid age: %d. Must be between %d and %d", n.Age, minAge, maxAge)
	}
	return nil
}

// WeightClassFor maps a weight in pounds to its class name. Weights below the
// featherweight floor are rejected at registration, so the error only surfaces
// for rows written outside this service.
func WeightClassFor(weight int) (string, error) {
	switch {
	case weight >= heavyweightFloor:
		return ClassHeavyweight, nil
	case weight >= middleweightFloor:
		return ClassMiddleweight, nil
	case weight >= lightweightFloor:
		return ClassLightweight, nil
	case weight >= featherweightFloor:
		return ClassFeatherweight, nil
	default:
		return "", fmt.Errorf("invalid weight: %d. Weight must be at least %d", weight, featherweightFloor)
	}
}

// FightResult is the outcome recorded for one boxer after a fight.
type FightResult string

const (
	ResultWin  FightResult = "win"
	ResultLoss FightResult = "loss"
)

// Valid reports whether the result is one of the recordable outcomes.
func (r FightResult) Valid() bool {
	return r == ResultWin || r == ResultLoss
}
