package app

import (
	"net/url"
	"strconv"
	"strings"
)

const maxTracedQueryLength = 256

// NormalizeDBURL asks lib/pq to skip binary results for unnamed prepared statements,
// which transaction-mode poolers cannot serve.
func NormalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}

// formatDBQueryForTrace turns a query into a span label. Whitespace is collapsed and the
// column lists of SELECT and INSERT statements are elided, since every cricketer query
// carries the same wide column set.
func formatDBQueryForTrace(query string) string {
	label := elideColumnLists(strings.Join(strings.Fields(query), " "))
	if len(label) > maxTracedQueryLength {
		label = label[:maxTracedQueryLength] + "..."
	}
	return label
}

func elideColumnLists(query string) string {
	switch {
	case strings.HasPrefix(query, "SELECT "):
		end := strings.Index(query, " FROM ")
		if end < 0 {
			return query
		}
		cols := query[len("SELECT "):end]
		if !strings.Contains(cols, ",") {
			return query
		}
		return "SELECT <" + strconv.Itoa(strings.Count(cols, ",")+1) + " columns>" + query[end:]
	case strings.HasPrefix(query, "INSERT INTO "):
		const valuesMarker = ") VALUES ("
		open := strings.Index(query, " (")
		values := strings.Index(query, valuesMarker)
		if open < 0 || values < open {
			return query
		}
		rest := query[values+len(valuesMarker):]
		closing := strings.Index(rest, ")")
		if closing < 0 {
			return query
		}
		return query[:open] + " (...) VALUES (...)" + rest[closing+1:]
	default:
		return query
	}
}
