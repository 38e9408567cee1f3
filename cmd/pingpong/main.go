// Command pingpong asks for two players' serve abilities and a number of
// matches, simulates them and prints how often each player won.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goserg/matchsim/internal/domain"
	"github.com/goserg/matchsim/internal/format"
	"github.com/goserg/matchsim/internal/logger"
	"github.com/goserg/matchsim/internal/sim"
	"github.com/sirupsen/logrus"
)

type options struct {
	bestOf int
	seed   int64
	debug  bool
}

func main() {
	var opts options
	flag.IntVar(&opts.bestOf, "best-of", domain.DefaultBestOf, "games in a match, odd")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	flag.BoolVar(&opts.debug, "debug", false, "log simulation details")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, opts); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, opts options) error {
	if err := domain.ValidateBestOf(opts.bestOf); err != nil {
		return err
	}
	log := logger.New(opts.debug)
	log.SetOutput(os.Stderr)

	p := newPrompter(in, out)
	abilityA, err := p.ability("Player A ability (0-1): ", "0.6")
	if err != nil {
		return err
	}
	abilityB, err := p.ability("Player B ability (0-1): ", "0.5")
	if err != nil {
		return err
	}
	simulations, err := p.simulations("Number of matches to simulate: ")
	if err != nil {
		return err
	}

	params, err := domain.NewParams(abilityA, abilityB, simulations, opts.bestOf, opts.seed)
	if err != nil {
		return err
	}
	if params.Seed == 0 {
		params.Seed = time.Now().UnixNano()
	}
	log.WithFields(logrus.Fields{
		"best_of": params.BestOf,
		"seed":    params.Seed,
	}).Debug("simulating")

	result, err := sim.Aggregate(rand.New(rand.NewSource(params.Seed)), params)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\n%s\n", format.Summary(result))
	return err
}

var errNoInput = errors.New("input closed")

// prompter asks again until it gets a valid answer.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", errNoInput
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) ability(question string, example string) (float64, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input, enter a number such as %s\n", example)
			continue
		}
		if domain.ValidateAbility("ability", v) != nil {
			fmt.Fprintln(p.out, "Ability must be between 0 and 1, try again")
			continue
		}
		return v, nil
	}
}

func (p *prompter) simulations(question string) (int, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input, enter an integer such as 500")
			continue
		}
		if domain.ValidateSimulations(v) != nil {
			fmt.Fprintln(p.out, "Number of matches must be a positive integer, try again")
			continue
		}
		return v, nil
	}
}
