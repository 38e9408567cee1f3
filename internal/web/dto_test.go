package web

import (
	"net/url"
	"testing"
)

func Test_simulateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     simulateRequest
		wantErr bool
	}{
		{
			name:    "default best of",
			req:     simulateRequest{AbilityA: 0.6, AbilityB: 0.5, Simulations: 100},
			wantErr: false,
		},
		{
			name:    "explicit best of",
			req:     simulateRequest{AbilityA: 0.6, AbilityB: 0.5, Simulations: 100, BestOf: 7},
			wantErr: false,
		},
		{
			name:    "ability out of range",
			req:     simulateRequest{AbilityA: 1.6, AbilityB: 0.5, Simulations: 100},
			wantErr: true,
		},
		{
			name:    "missing simulations",
			req:     simulateRequest{AbilityA: 0.6, AbilityB: 0.5},
			wantErr: true,
		},
		{
			name:    "even best of",
			req:     simulateRequest{AbilityA: 0.6, AbilityB: 0.5, Simulations: 100, BestOf: 2},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_parseSimulateForm(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		want       simulateRequest
		wantErrors int
	}{
		{
			name: "full form",
			form: url.Values{
				"abilityA":    {"0.6"},
				"abilityB":    {" 0.5 "},
				"simulations": {"500"},
				"bestOf":      {"3"},
				"seed":        {"42"},
			},
			want: simulateRequest{AbilityA: 0.6, AbilityB: 0.5, Simulations: 500, BestOf: 3, Seed: 42},
		},
		{
			name: "optional fields empty",
			form: url.Values{
				"abilityA":    {"1"},
				"abilityB":    {"0"},
				"simulations": {"10"},
			},
			want: simulateRequest{AbilityA: 1, AbilityB: 0, Simulations: 10},
		},
		{
			name: "not numbers",
			form: url.Values{
				"abilityA":    {"abc"},
				"abilityB":    {"0.5"},
				"simulations": {"many"},
				"seed":        {"x"},
			},
			want:       simulateRequest{AbilityB: 0.5},
			wantErrors: 3,
		},
		{
			name: "out of range",
			form: url.Values{
				"abilityA":    {"2"},
				"abilityB":    {"0.5"},
				"simulations": {"-1"},
			},
			want:       simulateRequest{AbilityA: 2, AbilityB: 0.5, Simulations: -1},
			wantErrors: 2,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseSimulateForm(func(key string, _ ...string) string {
				return tt.form.Get(key)
			})
			if tt.wantErrors > 0 {
				if err == nil {
					t.Fatalf("parseSimulateForm() expected error")
				}
				if n := len(unwrap(err)); n != tt.wantErrors {
					t.Errorf("parseSimulateForm() returned %d errors, want %d: %v", n, tt.wantErrors, err)
				}
				if got != tt.want {
					t.Errorf("parseSimulateForm() = %+v, want parsed fields %+v", got, tt.want)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSimulateForm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseSimulateForm() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
