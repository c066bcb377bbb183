package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/cricviz/internal/domain/cricketer"
	"github.com/riskibarqy/cricviz/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

type cricketerView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Country       string `json:"country,omitempty"`
	Role          string `json:"role,omitempty"`
	Matches       *int   `json:"matches"`
	InningsBatted *int   `json:"innings_batted"`
	NotOut        *int   `json:"not_out"`
	RunsScored    *int   `json:"runs_scored"`
	BallsFaced    *int   `json:"balls_faced"`
	HighScore     *int   `json:"high_score"`
	Centuries     *int   `json:"centuries"`
	HalfCenturies *int   `json:"half_centuries"`
	FoursScored   *int   `json:"fours_scored"`
	SixesScored   *int   `json:"sixes_scored"`
	InningsBowled *int   `json:"innings_bowled"`
	BallsBowled   *int   `json:"balls_bowled"`
	RunsGiven     *int   `json:"runs_given"`
	WicketsTaken  *int   `json:"wickets_taken"`
}

type battingSummaryView struct {
	cricketerView
	BattingAverage    *float64 `json:"batting_average"`
	BattingStrikeRate *float64 `json:"batting_strike_rate"`
}

func newCricketerView(c cricketer.Cricketer) cricketerView {
	return cricketerView{
		ID:            c.ID,
		Name:          c.Name,
		Country:       c.Country,
		Role:          string(c.Role),
		Matches:       c.Matches,
		InningsBatted: c.InningsBatted,
		NotOut:        c.NotOut,
		RunsScored:    c.RunsScored,
		BallsFaced:    c.BallsFaced,
		HighScore:     c.HighScore,
		Centuries:     c.Centuries,
		HalfCenturies: c.HalfCenturies,
		FoursScored:   c.FoursScored,
		SixesScored:   c.SixesScored,
		InningsBowled: c.InningsBowled,
		BallsBowled:   c.BallsBowled,
		RunsGiven:     c.RunsGiven,
		WicketsTaken:  c.WicketsTaken,
	}
}

func cricketerViews(items []cricketer.Cricketer) []cricketerView {
	out := make([]cricketerView, 0, len(items))
	for _, item := range items {
		out = append(out, newCricketerView(item))
	}
	return out
}

func summaryView(s usecase.BattingSummary) battingSummaryView {
	out := battingSummaryView{cricketerView: newCricketerView(s.Cricketer)}
	if s.HasAverage {
		avg := s.Average
		out.BattingAverage = &avg
	}
	if s.HasStrikeRate {
		sr := s.StrikeRate
		out.BattingStrikeRate = &sr
	}
	return out
}

func writeJSON(w io.Writer, payload any) error {
	encoder := sonic.ConfigDefault.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeCricketerTable(w io.Writer, items []cricketer.Cricketer) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCOUNTRY\tROLE\tMATCHES\tRUNS\tHS\tAVG\tSR\tWKTS")
	for _, c := range items {
		avg, hasAvg := c.BattingAverage()
		sr, hasSR := c.BattingStrikeRate()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name,
			orDash(c.Country),
			orDash(string(c.Role)),
			formatCounter(c.Matches),
			formatCounter(c.RunsScored),
			formatCounter(c.HighScore),
			formatMetric(avg, hasAvg),
			formatMetric(sr, hasSR),
			formatCounter(c.WicketsTaken),
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	_, err := w.Write(buf.B)
	return err
}

func writeSummary(w io.Writer, s usecase.BattingSummary) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	c := s.Cricketer
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Name", c.Name},
		{"Country", orDash(c.Country)},
		{"Role", orDash(string(c.Role))},
		{"Matches", formatCounter(c.Matches)},
		{"Innings", formatCounter(c.InningsBatted)},
		{"Not out", formatCounter(c.NotOut)},
		{"Runs", formatCounter(c.RunsScored)},
		{"Balls faced", formatCounter(c.BallsFaced)},
		{"High score", formatCounter(c.HighScore)},
		{"100s / 50s", formatCounter(c.Centuries) + " / " + formatCounter(c.HalfCenturies)},
		{"4s / 6s", formatCounter(c.FoursScored) + " / " + formatCounter(c.SixesScored)},
		{"Batting average", formatMetric(s.Average, s.HasAverage)},
		{"Strike rate", formatMetric(s.StrikeRate, s.HasStrikeRate)},
		{"Wickets", formatCounter(c.WicketsTaken)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1])
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	_, err := w.Write(buf.B)
	return err
}

func formatCounter(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func formatMetric(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
