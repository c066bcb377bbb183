package cricketer

import (
	"math"
	"testing"
)

func TestBattingAverage(t *testing.T) {
	cases := []struct {
		name   string
		c      Cricketer
		want   float64
		wantOK bool
	}{
		{name: "generic", c: Cricketer{RunsScored: Int(100), InningsBatted: Int(10), NotOut: Int(2)}, want: 12.5, wantOK: true},
		{name: "never dismissed", c: Cricketer{RunsScored: Int(87), InningsBatted: Int(3), NotOut: Int(3)}, want: 87, wantOK: true},
		{name: "not batted", c: Cricketer{RunsScored: Int(0), InningsBatted: Int(0), NotOut: Int(0)}},
		{name: "runs unknown", c: Cricketer{InningsBatted: Int(10), NotOut: Int(2)}},
		{name: "innings unknown", c: Cricketer{RunsScored: Int(100), NotOut: Int(2)}},
		{name: "not outs unknown", c: Cricketer{RunsScored: Int(100), InningsBatted: Int(10)}},
		{name: "fractional", c: Cricketer{RunsScored: Int(15921), InningsBatted: Int(329), NotOut: Int(33)}, want: 15921.0 / 296.0, wantOK: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.c.BattingAverage()
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("average = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBattingStrikeRate(t *testing.T) {
	cases := []struct {
		name   string
		c      Cricketer
		want   float64
		wantOK bool
	}{
		{name: "generic", c: Cricketer{RunsScored: Int(50), BallsFaced: Int(100)}, want: 50, wantOK: true},
		{name: "quick scoring", c: Cricketer{RunsScored: Int(55), BallsFaced: Int(80)}, want: 68.75, wantOK: true},
		{name: "no balls faced", c: Cricketer{RunsScored: Int(0), BallsFaced: Int(0)}},
		{name: "balls unknown", c: Cricketer{RunsScored: Int(15921)}},
		{name: "runs unknown", c: Cricketer{BallsFaced: Int(10)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.c.BattingStrikeRate()
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("strike rate = %v, want %v", got, tc.want)
			}
		})
	}
}
