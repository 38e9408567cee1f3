package tgbot

import (
	"errors"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/goserg/matchsim/internal/format"
	"github.com/goserg/matchsim/internal/service"
)

type SimCommand struct {
	simulations *service.SimulationService
}

var errSimUsage = errors.New(`usage: /sim 0.6 0.5 1000 [best of], abilities of A and B between 0 and 1 and the number of matches`)

func (c *SimCommand) Run(_ int64, args string, resp *tgbotapi.MessageConfig) error {
	fields := strings.Fields(args)
	if len(fields) < 3 || len(fields) > 4 {
		return errSimUsage
	}
	abilityA, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return errSimUsage
	}
	abilityB, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return errSimUsage
	}
	simulations, err := strconv.Atoi(fields[2])
	if err != nil {
		return errSimUsage
	}
	var bestOf int
	if len(fields) == 4 {
		bestOf, err = strconv.Atoi(fields[3])
		if err != nil {
			return errSimUsage
		}
	}
	p, err := c.simulations.NewParams(abilityA, abilityB, simulations, bestOf, 0)
	if err != nil {
		return err
	}
	report, err := c.simulations.Simulate(p)
	if err != nil {
		return err
	}
	resp.Text = format.Report(report)
	return nil
}

func (c *SimCommand) Help() string {
	return `Simulates table tennis matches. Usage: /sim 0.6 0.5 1000 - A wins 60% of own serves, B 50%, 1000 matches. An optional fourth number sets the series length (best of 5 by default).`
}

type LastCommand struct {
	simulations *service.SimulationService
}

func (c *LastCommand) Run(_ int64, _ string, resp *tgbotapi.MessageConfig) error {
	report, err := c.simulations.Last()
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			resp.Text = "no simulations yet"
			return nil
		}
		return err
	}
	resp.Text = format.Report(report)
	return nil
}

func (c *LastCommand) Help() string {
	return "Shows the latest simulation"
}
