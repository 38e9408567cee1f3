package sim

import "github.com/goserg/matchsim/internal/domain"

const (
	GamePoints = 11
	WinMargin  = 2
)

// Game is a finished game.
type Game struct {
	ScoreA  int `json:"scoreA"`
	ScoreB  int `json:"scoreB"`
	Rallies int `json:"rallies"`
}

func (g Game) Winner() domain.Side {
	if g.ScoreA > g.ScoreB {
		return domain.PlayerA
	}
	return domain.PlayerB
}

// GameOver reports whether a game with the given score is finished.
func GameOver(a, b int) bool {
	return (a >= GamePoints || b >= GamePoints) && abs(a-b) >= WinMargin
}

// PlayGame plays one game to completion. Player A serves first. The server
// keeps serve while winning rallies and hands it over on a lost rally, with
// the receiver taking the point.
func PlayGame(src Source, abilityA, abilityB float64) Game {
	var g Game
	server := domain.PlayerA
	for {
		ability := abilityA
		if server == domain.PlayerB {
			ability = abilityB
		}
		if !Rally(src, ability) {
			server = server.Other()
		}
		if server == domain.PlayerA {
			g.ScoreA++
		} else {
			g.ScoreB++
		}
		g.Rallies++
		if GameOver(g.ScoreA, g.ScoreB) {
			return g
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
