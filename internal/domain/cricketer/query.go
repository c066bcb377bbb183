package cricketer

import "sort"

// Query is a composable set of scopes over all cricketers. Predicates intersect:
// every country and every role added must match, so Batters().Bowlers() is empty.
// The zero Query matches everything in storage order.
type Query struct {
	Countries           []string
	Roles               []Role
	DescendingByMatches bool
	Limit               int
}

func All() Query {
	return Query{}
}

func (q Query) Country(country string) Query {
	q.Countries = append(append([]string(nil), q.Countries...), country)
	return q
}

func (q Query) Role(role Role) Query {
	q.Roles = append(append([]Role(nil), q.Roles...), role)
	return q
}

func (q Query) AustralianPlayers() Query {
	return q.Country(CountryAustralia)
}

func (q Query) Batters() Query {
	return q.Role(RoleBatter)
}

func (q Query) Bowlers() Query {
	return q.Role(RoleBowler)
}

// SortByMatches orders results by matches, most first. Unknown match counts sort last.
func (q Query) SortByMatches() Query {
	q.DescendingByMatches = true
	return q
}

func (q Query) Take(n int) Query {
	q.Limit = n
	return q
}

// Matches reports whether c satisfies every predicate of q.
func (q Query) Matches(c Cricketer) bool {
	for _, country := range q.Countries {
		if c.Country != country {
			return false
		}
	}
	for _, role := range q.Roles {
		if c.Role != role {
			return false
		}
	}
	return true
}

// Apply filters, sorts and limits items in memory. items is not modified.
func (q Query) Apply(items []Cricketer) []Cricketer {
	out := make([]Cricketer, 0, len(items))
	for _, c := range items {
		if q.Matches(c) {
			out = append(out, c)
		}
	}

	if q.DescendingByMatches {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].Matches, out[j].Matches
			if a == nil || b == nil {
				return a != nil && b == nil
			}
			return *a > *b
		})
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}
