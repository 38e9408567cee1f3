// Package format renders simulation results for people.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goserg/matchsim/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Summary prints the match count and both players' wins with rates rounded to
// one decimal place.
func Summary(r domain.Result) string {
	var b strings.Builder
	b.WriteString(printer.Sprintf("Simulated matches: %d\n", r.Total()))
	b.WriteString(printer.Sprintf("Player A wins: %d (%.1f%%)\n", r.WinsA, r.RateA))
	b.WriteString(printer.Sprintf("Player B wins: %d (%.1f%%)", r.WinsB, r.RateB))
	return b.String()
}

func Report(r domain.Report) string {
	var b strings.Builder
	b.WriteString(printer.Sprintf("Abilities: A %.2f, B %.2f, best of %d\n",
		r.Params.AbilityA, r.Params.AbilityB, r.Params.BestOf))
	b.WriteString(Summary(r.Result))
	if r.EloGap != nil {
		b.WriteString(fmt.Sprintf("\nImplied Elo advantage of A: %+d", *r.EloGap))
	}
	b.WriteString("\nSeed: " + strconv.FormatInt(r.Params.Seed, 10))
	return b.String()
}
