package cricketer

import "testing"

func TestClone_DoesNotShareCounters(t *testing.T) {
	orig := New("Brian Lara", "West Indies", RoleBatter)
	orig.BallsFaced = nil
	orig.Matches = Int(131)

	cp := orig.Clone()
	*cp.Matches = 132

	if Value(orig.Matches) != 131 {
		t.Fatalf("clone wrote through to original: %d", Value(orig.Matches))
	}
	if cp.BallsFaced != nil {
		t.Fatalf("absent counter must stay absent in the clone")
	}
}

func TestValidate(t *testing.T) {
	c := New("Rahul Dravid", "India", RoleBatter)
	c.ID = "c1"
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.NotOut = Int(1)
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error when not outs exceed innings")
	}

	for _, tc := range []Cricketer{{Name: "No ID"}, {ID: "c2"}} {
		if err := tc.Validate(); err == nil {
			t.Fatalf("expected error for %+v", tc)
		}
	}
}
