package cricketer

import "testing"

func TestClassicalBatters(t *testing.T) {
	got := ClassicalBatters()
	if len(got) != 5 {
		t.Fatalf("expected 5 classical batters, got %d", len(got))
	}

	tendulkar := got[0]
	if tendulkar.Name != "Sachin Tendulkar" || tendulkar.Country != "India" || tendulkar.Role != RoleBatter {
		t.Fatalf("unexpected first row: %+v", tendulkar)
	}
	if tendulkar.BallsFaced != nil {
		t.Fatalf("Tendulkar balls faced should be unknown")
	}
	if _, ok := tendulkar.BattingStrikeRate(); ok {
		t.Fatalf("strike rate should be unavailable without balls faced")
	}
	if tendulkar.FoursScored != nil || tendulkar.InningsBowled != nil {
		t.Fatalf("counters outside the import table should be unknown")
	}

	sangakkara := got[2]
	if sangakkara.Role != RoleWicketkeeper || sangakkara.Country != "Sri Lanka" {
		t.Fatalf("unexpected Sangakkara row: %+v", sangakkara)
	}

	lara := got[4]
	assertCounter(t, "lara high_score", lara.HighScore, 400)
	assertCounter(t, "lara balls_faced", lara.BallsFaced, 19753)

	got[1].Matches = Int(0)
	if again := ClassicalBatters(); Value(again[1].Matches) != 164 {
		t.Fatalf("import table must not be mutated through returned records")
	}
}
