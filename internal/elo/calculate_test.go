package elo

import (
	"math"
	"testing"
)

func Test_expected(t *testing.T) {
	type args struct {
		Ra int
		Rb int
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			name: "same rating",
			args: args{Ra: 1000, Rb: 1000},
			want: 0.5,
		},
		{
			name: "top rating",
			args: args{Ra: 1400, Rb: 1000},
			want: 10.0 / 11.0,
		},
		{
			name: "bottom rating",
			args: args{Ra: 1000, Rb: 1400},
			want: 1.0 / 11.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expected(tt.args.Ra, tt.args.Rb); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGap(t *testing.T) {
	tests := []struct {
		name   string
		Ea     float64
		want   int
		wantOk bool
	}{
		{
			name:   "even",
			Ea:     0.5,
			want:   0,
			wantOk: true,
		},
		{
			name:   "ten to one",
			Ea:     10.0 / 11.0,
			want:   400,
			wantOk: true,
		},
		{
			name:   "one to ten",
			Ea:     1.0 / 11.0,
			want:   -400,
			wantOk: true,
		},
		{
			name:   "certain win",
			Ea:     1,
			wantOk: false,
		},
		{
			name:   "certain loss",
			Ea:     0,
			wantOk: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Gap(tt.Ea)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("Gap() = %v, %v, want %v, %v", got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestGapInvertsExpectedScore(t *testing.T) {
	for _, diff := range []int{-350, -120, 0, 55, 300} {
		got, ok := Gap(expected(1500+diff, 1500))
		if !ok || got != diff {
			t.Errorf("Gap(expected(%d)) = %d, %v", diff, got, ok)
		}
	}
}
