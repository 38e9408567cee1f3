package domain

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of a batch of simulated matches.
// Rates are percentages and are not rounded.
type Result struct {
	WinsA int     `json:"winsA"`
	WinsB int     `json:"winsB"`
	RateA float64 `json:"rateA"`
	RateB float64 `json:"rateB"`
}

func (r Result) Total() int {
	return r.WinsA + r.WinsB
}

type Report struct {
	ID        uuid.UUID     `json:"id"`
	Params    Params        `json:"params"`
	Result    Result        `json:"result"`
	CreatedAt time.Time     `json:"createdAt"`
	Duration  time.Duration `json:"duration"`

	// EloGap is the rating advantage of A an Elo model needs to predict RateA.
	// It is absent when one side won every match.
	EloGap *int `json:"eloGap,omitempty"`
}
