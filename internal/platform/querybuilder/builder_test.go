package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("public_id", "name").
		From("cricketers").
		Where(Eq("country", "Australia"), Eq("role", "Batter")).
		OrderBy("matches DESC NULLS LAST", "id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT public_id, name FROM cricketers WHERE country = $1 AND role = $2 ORDER BY matches DESC NULLS LAST, id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Australia" || args[1] != "Batter" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("cricketers").
		Columns("public_id", "name").
		Values("c1", "Brian Lara").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO cricketers (public_id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "c1" || args[1] != "Brian Lara" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("cricketers").Columns("a", "b").Values(1).ToSQL()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("cricketers").
		Set("matches", 201).
		SetExpr("updated_at", "NOW()").
		Where(Eq("public_id", "c1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE cricketers SET matches = $1, updated_at = NOW() WHERE public_id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 201 || args[1] != "c1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_RequiresWhere(t *testing.T) {
	if _, _, err := Update("cricketers").Set("matches", 1).ToSQL(); err == nil {
		t.Fatalf("expected error for unbounded update")
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("cricketers").Where(Eq("public_id", "c1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}

	if query != "DELETE FROM cricketers WHERE public_id = $1" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "c1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("cricketers").ToSQL(); err == nil {
		t.Fatalf("expected error for unbounded delete")
	}
}
