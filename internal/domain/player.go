package domain

import (
	"errors"
	"fmt"
	"math"
)

type Side int

const (
	PlayerA Side = iota
	PlayerB
)

func (s Side) String() string {
	switch s {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "unknown"
	}
}

// Other returns the opponent of s.
func (s Side) Other() Side {
	if s == PlayerA {
		return PlayerB
	}
	return PlayerA
}

const DefaultBestOf = 5

var ErrInvalidArgument = errors.New("invalid argument")

// Params is a validated set of simulation inputs. Build it with NewParams.
type Params struct {
	AbilityA    float64 `json:"abilityA"`
	AbilityB    float64 `json:"abilityB"`
	Simulations int     `json:"simulations"`
	BestOf      int     `json:"bestOf"`
	// Seed of zero means the caller wants a random seed.
	Seed int64 `json:"seed"`
}

// NewParams validates every field and returns all violations at once.
// bestOf of zero selects DefaultBestOf.
func NewParams(abilityA, abilityB float64, simulations, bestOf int, seed int64) (Params, error) {
	if bestOf == 0 {
		bestOf = DefaultBestOf
	}
	p := Params{
		AbilityA:    abilityA,
		AbilityB:    abilityB,
		Simulations: simulations,
		BestOf:      bestOf,
		Seed:        seed,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func (p Params) Validate() error {
	return errors.Join(
		ValidateAbility("ability A", p.AbilityA),
		ValidateAbility("ability B", p.AbilityB),
		ValidateSimulations(p.Simulations),
		ValidateBestOf(p.BestOf),
	)
}

func ValidateAbility(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s must be between 0 and 1, got %v", ErrInvalidArgument, name, v)
	}
	return nil
}

func ValidateSimulations(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: number of simulations must be positive, got %d", ErrInvalidArgument, n)
	}
	return nil
}

func ValidateBestOf(n int) error {
	if n <= 0 || n%2 == 0 {
		return fmt.Errorf("%w: best of must be an odd positive number, got %d", ErrInvalidArgument, n)
	}
	return nil
}

// RequiredWins is the number of games needed to take a best-of-n series.
func RequiredWins(bestOf int) int {
	return bestOf/2 + 1
}
