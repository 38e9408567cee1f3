//go:build e2e

package e2e

import (
	"context"
	"flag"
	"net/http"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	sel "github.com/goserg/matchsim/tests/selectors"
	"github.com/stretchr/testify/suite"
)

const baseURL = "http://127.0.0.1:3000"

type TestSuite1 struct {
	suite.Suite
	process *Process
}

var (
	serverBin        string
	serverConfigPath string
	botConfigPath    string
)

func init() {
	flag.StringVar(&serverBin, "server-bin", "../bin/server", "path to server binary")
	flag.StringVar(&serverConfigPath, "server-config", "", "path to server configs")
	flag.StringVar(&botConfigPath, "bot-config", "", "path to bot configs")
}

// SetupSuite starts the server binary and waits until it answers.
func (s *TestSuite1) SetupSuite() {
	s.Require().NotEmpty(serverConfigPath, "-server-config MUST be set")
	s.Require().NotEmpty(botConfigPath, "-bot-config MUST be set")
	p := NewProcess(context.Background(), serverBin,
		"-server-config", serverConfigPath,
		"-bot-config", botConfigPath)
	s.process = p
	err := p.Start(context.Background())
	s.Require().NoError(err, "cant start process")

	if err := waitForStartup(time.Second * 5); err != nil {
		s.T().Fatalf("unable to start app: %v\n%s", err, p.Output())
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get(baseURL + "/")
			if r != nil {
				r.Body.Close()
				if r.StatusCode == http.StatusOK {
					return nil
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *TestSuite1) TearDownSuite() {
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	s.T().Logf("process finished with code %d", exitCode)
}

func (s *TestSuite1) newBrowser() (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(context.Background(), time.Second*15)
	ctx, cancelBrowser := chromedp.NewContext(ctx)
	return ctx, func() {
		cancelBrowser()
		cancelTimeout()
	}
}

func (s *TestSuite1) TestPages() {
	ctx, cancel := s.newBrowser()
	defer cancel()

	var logo string
	err := chromedp.Run(ctx,
		s.CheckStatus(baseURL+"/", http.StatusOK),
		s.CheckStatus(baseURL+"/api/simulations", http.StatusOK),
		s.CheckStatus(baseURL+"/simulations/3f1c1f9e-8a0e-4f53-9f0b-2d6f0e4a6b11", http.StatusNotFound),
		chromedp.Navigate(baseURL+"/"),
		chromedp.Text(sel.Logo, &logo, chromedp.ByQuery),
	)
	s.Require().NoError(err)
	s.Equal("Table tennis match simulator", logo)
}

func (s *TestSuite1) TestSimulateForm() {
	ctx, cancel := s.newBrowser()
	defer cancel()

	var rateA, rateB, location string
	err := chromedp.Run(ctx,
		chromedp.Navigate(baseURL+"/"),
		chromedp.WaitVisible(sel.SimulateFormSubmit, chromedp.ByQuery),
		chromedp.SetValue(sel.SimulateFormAbilityA, "1", chromedp.ByQuery),
		chromedp.SetValue(sel.SimulateFormAbilityB, "0", chromedp.ByQuery),
		chromedp.SetValue(sel.SimulateFormMatches, "10", chromedp.ByQuery),
		chromedp.SetValue(sel.SimulateFormBestOf, "5", chromedp.ByQuery),
		chromedp.Click(sel.SimulateFormSubmit, chromedp.ByQuery),
		chromedp.WaitVisible(sel.ReportRateA, chromedp.ByQuery),
		chromedp.Text(sel.ReportRateA, &rateA, chromedp.ByQuery),
		chromedp.Text(sel.ReportRateB, &rateB, chromedp.ByQuery),
		chromedp.Location(&location),
	)
	s.Require().NoError(err)
	s.True(strings.HasPrefix(location, baseURL+"/simulations/"), location)
	s.Equal("100.0%", rateA)
	s.Equal("0.0%", rateB)
}

func (s *TestSuite1) TestSimulateFormInvalid() {
	ctx, cancel := s.newBrowser()
	defer cancel()

	var errText, matches string
	err := chromedp.Run(ctx,
		chromedp.Navigate(baseURL+"/"),
		chromedp.WaitVisible(sel.SimulateFormSubmit, chromedp.ByQuery),
		chromedp.SetValue(sel.SimulateFormAbilityA, "x", chromedp.ByQuery),
		chromedp.SetValue(sel.SimulateFormMatches, "777", chromedp.ByQuery),
		chromedp.Click(sel.SimulateFormSubmit, chromedp.ByQuery),
		chromedp.WaitVisible(sel.SimulateFormError, chromedp.ByQuery),
		chromedp.Text(sel.SimulateFormError, &errText, chromedp.ByQuery),
		chromedp.Value(sel.SimulateFormMatches, &matches, chromedp.ByQuery),
	)
	s.Require().NoError(err)
	s.Contains(errText, "ability A must be a number")
	s.Equal("777", matches)
}

func (s *TestSuite1) CheckStatus(path string, status int) chromedp.Tasks {
	return []chromedp.Action{
		chromedp.ActionFunc(func(ctx context.Context) error {
			resp, err := chromedp.RunResponse(ctx,
				chromedp.Navigate(path))
			if err != nil {
				return err
			}
			if resp.Status != int64(status) {
				s.T().Errorf("%s must answer with status %d, got %d", path, status, resp.Status)
			}
			return nil
		}),
	}
}
