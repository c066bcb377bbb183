package cricketer

import (
	"time"

	"github.com/cockroachdb/errors"
)

// Role is the primary discipline of a cricketer. Values outside the constants are allowed.
type Role string

const (
	RoleBatter       Role = "Batter"
	RoleBowler       Role = "Bowler"
	RoleWicketkeeper Role = "Wicketkeeper"
)

const CountryAustralia = "Australia"

// Cricketer holds cumulative career statistics for one player.
//
// Counters are nil when the value is unknown. Name is the lookup key but is not
// enforced unique: importing the same player twice yields two records.
type Cricketer struct {
	ID      string
	Name    string
	Country string
	Role    Role

	Matches       *int
	InningsBatted *int
	NotOut        *int
	RunsScored    *int
	BallsFaced    *int
	HighScore     *int
	Centuries     *int
	HalfCenturies *int
	FoursScored   *int
	SixesScored   *int

	InningsBowled *int
	BallsBowled   *int
	RunsGiven     *int
	WicketsTaken  *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns a record with every counter present and zero.
func New(name, country string, role Role) Cricketer {
	return Cricketer{
		Name:          name,
		Country:       country,
		Role:          role,
		Matches:       Int(0),
		InningsBatted: Int(0),
		NotOut:        Int(0),
		RunsScored:    Int(0),
		BallsFaced:    Int(0),
		HighScore:     Int(0),
		Centuries:     Int(0),
		HalfCenturies: Int(0),
		FoursScored:   Int(0),
		SixesScored:   Int(0),
		InningsBowled: Int(0),
		BallsBowled:   Int(0),
		RunsGiven:     Int(0),
		WicketsTaken:  Int(0),
	}
}

func (c Cricketer) Validate() error {
	if c.ID == "" {
		return errors.New("cricketer id is required")
	}
	if c.Name == "" {
		return errors.New("cricketer name is required")
	}
	if Value(c.NotOut) > Value(c.InningsBatted) {
		return errors.Newf("cricketer %q has %d not outs in %d innings", c.Name, Value(c.NotOut), Value(c.InningsBatted))
	}
	return nil
}

// Int returns a pointer to v, for building records with known counters.
func Int(v int) *int {
	return &v
}

// Value dereferences a counter, treating an unknown value as zero.
func Value(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// plus returns a fresh pointer so values shared with cached copies are never written through.
func plus(p *int, delta int) *int {
	return Int(Value(p) + delta)
}

// Clone returns a copy that shares no counter pointers with c.
func (c Cricketer) Clone() Cricketer {
	out := c
	for _, field := range []**int{
		&out.Matches, &out.InningsBatted, &out.NotOut, &out.RunsScored, &out.BallsFaced,
		&out.HighScore, &out.Centuries, &out.HalfCenturies, &out.FoursScored, &out.SixesScored,
		&out.InningsBowled, &out.BallsBowled, &out.RunsGiven, &out.WicketsTaken,
	} {
		if *field != nil {
			*field = Int(**field)
		}
	}
	return out
}
