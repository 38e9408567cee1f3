package web

import (
	"errors"
	"strconv"
	"strings"

	"github.com/goserg/matchsim/internal/domain"
)

type simulateRequest struct {
	AbilityA    float64 `json:"abilityA"`
	AbilityB    float64 `json:"abilityB"`
	Simulations int     `json:"simulations"`
	BestOf      int     `json:"bestOf"`
	Seed        int64   `json:"seed"`
}

func (r simulateRequest) Validate() error {
	p := domain.Params{
		AbilityA:    r.AbilityA,
		AbilityB:    r.AbilityB,
		Simulations: r.Simulations,
		BestOf:      r.BestOf,
	}
	if p.BestOf == 0 {
		p.BestOf = domain.DefaultBestOf
	}
	return p.Validate()
}

type formValuer func(key string, defaultValue ...string) string

// parseSimulateForm reads the HTML form. Every field error is reported, not
// only the first one, and the fields that did parse are returned with it.
func parseSimulateForm(value formValuer) (simulateRequest, error) {
	var req simulateRequest
	var err, fieldErr error

	req.AbilityA, fieldErr = parseFloat(value("abilityA"), "ability A")
	err = errors.Join(err, fieldErr)
	req.AbilityB, fieldErr = parseFloat(value("abilityB"), "ability B")
	err = errors.Join(err, fieldErr)
	req.Simulations, fieldErr = parseInt(value("simulations"), "number of simulations")
	err = errors.Join(err, fieldErr)
	if s := strings.TrimSpace(value("bestOf")); s != "" {
		req.BestOf, fieldErr = parseInt(s, "best of")
		err = errors.Join(err, fieldErr)
	}
	if s := strings.TrimSpace(value("seed")); s != "" {
		req.Seed, fieldErr = strconv.ParseInt(s, 10, 64)
		if fieldErr != nil {
			err = errors.Join(err, errors.New("seed must be an integer"))
		}
	}
	if err != nil {
		return req, err
	}
	return req, req.Validate()
}

func parseFloat(s string, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.New(name + " must be a number, for example 0.6")
	}
	return v, nil
}

func parseInt(s string, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New(name + " must be an integer, for example 500")
	}
	return v, nil
}

type errorResponse struct {
	Errors []string `json:"errors"`
}

func newErrorResponse(err error) errorResponse {
	var resp errorResponse
	for _, err := range unwrap(err) {
		resp.Errors = append(resp.Errors, err.Error())
	}
	return resp
}
