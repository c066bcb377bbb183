package cricketer

// BattingAverage is runs scored per dismissal.
//
// ok is false when runs, innings or not outs are unknown, or the player has not batted.
// A player who was never dismissed averages their raw runs.
func (c Cricketer) BattingAverage() (avg float64, ok bool) {
	if c.RunsScored == nil || c.InningsBatted == nil || c.NotOut == nil || *c.InningsBatted == 0 {
		return 0, false
	}
	if *c.InningsBatted == *c.NotOut {
		return float64(*c.RunsScored), true
	}
	return float64(*c.RunsScored) / float64(*c.InningsBatted-*c.NotOut), true
}

// BattingStrikeRate is runs scored per 100 balls faced.
//
// ok is false when runs or balls faced are unknown, or no ball has been faced.
func (c Cricketer) BattingStrikeRate() (rate float64, ok bool) {
	if c.RunsScored == nil || c.BallsFaced == nil || *c.BallsFaced == 0 {
		return 0, false
	}
	return float64(*c.RunsScored) * 100 / float64(*c.BallsFaced), true
}
