package postgres

import (
	"database/sql"
	"time"
)

type cricketerTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	Name          string         `db:"name"`
	Country       sql.NullString `db:"country"`
	Role          sql.NullString `db:"role"`
	Matches       sql.NullInt64  `db:"matches"`
	InningsBatted sql.NullInt64  `db:"innings_batted"`
	NotOut        sql.NullInt64  `db:"not_out"`
	RunsScored    sql.NullInt64  `db:"runs_scored"`
	BallsFaced    sql.NullInt64  `db:"balls_faced"`
	HighScore     sql.NullInt64  `db:"high_score"`
	Centuries     sql.NullInt64  `db:"centuries"`
	HalfCenturies sql.NullInt64  `db:"half_centuries"`
	FoursScored   sql.NullInt64  `db:"fours_scored"`
	SixesScored   sql.NullInt64  `db:"sixes_scored"`
	InningsBowled sql.NullInt64  `db:"innings_bowled"`
	BallsBowled   sql.NullInt64  `db:"balls_bowled"`
	RunsGiven     sql.NullInt64  `db:"runs_given"`
	WicketsTaken  sql.NullInt64  `db:"wickets_taken"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type cricketerInsertModel struct {
	PublicID      string         `db:"public_id"`
	Name          string         `db:"name"`
	Country       sql.NullString `db:"country"`
	Role          sql.NullString `db:"role"`
	Matches       sql.NullInt64  `db:"matches"`
	InningsBatted sql.NullInt64  `db:"innings_batted"`
	NotOut        sql.NullInt64  `db:"not_out"`
	RunsScored    sql.NullInt64  `db:"runs_scored"`
	BallsFaced    sql.NullInt64  `db:"balls_faced"`
	HighScore     sql.NullInt64  `db:"high_score"`
	Centuries     sql.NullInt64  `db:"centuries"`
	HalfCenturies sql.NullInt64  `db:"half_centuries"`
	FoursScored   sql.NullInt64  `db:"fours_scored"`
	SixesScored   sql.NullInt64  `db:"sixes_scored"`
	InningsBowled sql.NullInt64  `db:"innings_bowled"`
	BallsBowled   sql.NullInt64  `db:"balls_bowled"`
	RunsGiven     sql.NullInt64  `db:"runs_given"`
	WicketsTaken  sql.NullInt64  `db:"wickets_taken"`
}

type cricketerTimestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
