package sim

import "github.com/goserg/matchsim/internal/domain"

// Aggregate plays p.Simulations independent matches and tallies the winners.
// p is validated again here, so a zero or negative trial count fails with
// domain.ErrInvalidArgument instead of dividing by zero.
func Aggregate(src Source, p domain.Params) (domain.Result, error) {
	if err := p.Validate(); err != nil {
		return domain.Result{}, err
	}
	var res domain.Result
	for i := 0; i < p.Simulations; i++ {
		m, err := PlayMatch(src, p.AbilityA, p.AbilityB, p.BestOf)
		if err != nil {
			return domain.Result{}, err
		}
		if m.Winner() == domain.PlayerA {
			res.WinsA++
		} else {
			res.WinsB++
		}
	}
	total := float64(p.Simulations)
	res.RateA = float64(res.WinsA) / total * 100
	res.RateB = float64(res.WinsB) / total * 100
	return res, nil
}
