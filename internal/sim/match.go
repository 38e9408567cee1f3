package sim

import "github.com/goserg/matchsim/internal/domain"

// Match is a finished best-of-N series.
type Match struct {
	BestOf int    `json:"bestOf"`
	GamesA int    `json:"gamesA"`
	GamesB int    `json:"gamesB"`
	Games  []Game `json:"games"`
}

func (m Match) Winner() domain.Side {
	if m.GamesA > m.GamesB {
		return domain.PlayerA
	}
	return domain.PlayerB
}

// PlayMatch plays games until one side has won domain.RequiredWins(bestOf)
// of them. Each game starts from 0:0 with A serving.
func PlayMatch(src Source, abilityA, abilityB float64, bestOf int) (Match, error) {
	if err := domain.ValidateBestOf(bestOf); err != nil {
		return Match{}, err
	}
	need := domain.RequiredWins(bestOf)
	m := Match{
		BestOf: bestOf,
		Games:  make([]Game, 0, bestOf),
	}
	for m.GamesA < need && m.GamesB < need {
		g := PlayGame(src, abilityA, abilityB)
		if g.Winner() == domain.PlayerA {
			m.GamesA++
		} else {
			m.GamesB++
		}
		m.Games = append(m.Games, g)
	}
	return m, nil
}
