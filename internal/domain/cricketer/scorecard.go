package cricketer

// BattingEntry is one batter's line on an innings scorecard.
type BattingEntry struct {
	PlayerName string `json:"player_name" validate:"required"`
	Dismissed  bool   `json:"dismissed"`
	Runs       int    `json:"runs" validate:"gte=0"`
	BallsFaced int    `json:"balls_faced" validate:"gte=0"`
	Fours      int    `json:"fours" validate:"gte=0"`
	Sixes      int    `json:"sixes" validate:"gte=0"`
}

// BowlingEntry is one bowler's line on an innings scorecard. Maidens are recorded
// on the scorecard but not accumulated.
type BowlingEntry struct {
	PlayerName  string `json:"player_name" validate:"required"`
	BallsBowled int    `json:"balls_bowled" validate:"gte=0"`
	Maidens     int    `json:"maidens" validate:"gte=0"`
	RunsGiven   int    `json:"runs_given" validate:"gte=0"`
	Wickets     int    `json:"wickets" validate:"gte=0"`
}

// Scorecard is the delta of one innings. Batting lines are applied before bowling lines.
type Scorecard struct {
	Batting []BattingEntry `json:"batting" validate:"dive"`
	Bowling []BowlingEntry `json:"bowling" validate:"dive"`
}

// ApplyBatting folds one batting innings into the career totals.
func (c *Cricketer) ApplyBatting(e BattingEntry) {
	c.Matches = plus(c.Matches, 1)
	c.InningsBatted = plus(c.InningsBatted, 1)
	if e.Dismissed {
		c.NotOut = plus(c.NotOut, 0)
	} else {
		c.NotOut = plus(c.NotOut, 1)
	}
	c.RunsScored = plus(c.RunsScored, e.Runs)
	c.BallsFaced = plus(c.BallsFaced, e.BallsFaced)
	c.FoursScored = plus(c.FoursScored, e.Fours)
	c.SixesScored = plus(c.SixesScored, e.Sixes)

	if c.HighScore == nil || e.Runs > *c.HighScore {
		c.HighScore = Int(e.Runs)
	}

	switch {
	case e.Runs >= 100:
		c.Centuries = plus(c.Centuries, e.Runs/100)
	case e.Runs >= 50:
		c.HalfCenturies = plus(c.HalfCenturies, 1)
	}
}

// ApplyBowling folds one bowling innings into the career totals.
func (c *Cricketer) ApplyBowling(e BowlingEntry) {
	c.Matches = plus(c.Matches, 1)
	c.InningsBowled = plus(c.InningsBowled, 1)
	c.BallsBowled = plus(c.BallsBowled, e.BallsBowled)
	c.RunsGiven = plus(c.RunsGiven, e.RunsGiven)
	c.WicketsTaken = plus(c.WicketsTaken, e.Wickets)
}
