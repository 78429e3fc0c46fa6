package querybuilder

import "testing"

func TestSelectToSQL(t *testing.T) {
	sql, args, err := Select("id", "name", "color").
		From("teams").
		Where(Eq("color", "#1d4ed8")).
		OrderBy("name ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}

	want := "SELECT id, name, color FROM teams WHERE color = $1 ORDER BY name ASC LIMIT 10"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 1 || args[0] != "#1d4ed8" {
		t.Fatalf("args = %v, want the color literal", args)
	}
}

func TestSelectInEmptyValues(t *testing.T) {
	sql, args, err := Select("id").
		From("players").
		Where(In("team_id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}

	if sql != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("sql = %q, want always-false condition", sql)
	}
	if len(args) != 0 {
		t.Fatalf("args = %v, want none", args)
	}
}

func TestInsertSuffixPlaceholders(t *testing.T) {
	sql, args, err := InsertInto("attendance").
		Columns("event_id", "player_id", "status", "reason").
		Values("e1", "p1", "Present", "").
		Suffix("ON CONFLICT (event_id, player_id) DO UPDATE SET status = EXCLUDED.status, reason = EXCLUDED.reason").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}

	want := "INSERT INTO attendance (event_id, player_id, status, reason) VALUES ($1, $2, $3, $4) " +
		"ON CONFLICT (event_id, player_id) DO UPDATE SET status = EXCLUDED.status, reason = EXCLUDED.reason"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 4 {
		t.Fatalf("args len = %d, want 4", len(args))
	}
}

func TestInsertRowLengthMismatch(t *testing.T) {
	_, _, err := InsertInto("events").
		Columns("id", "title").
		Values("e1").
		ToSQL()
	if err == nil {
		t.Fatal("expected error for mismatched row length")
	}
}

func TestUpdateSetExpr(t *testing.T) {
	sql, args, err := Update("players").
		Set("name", "Lena Becker").
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "p1")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}

	want := "UPDATE players SET name = $1, updated_at = NOW() WHERE id = $2"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 || args[1] != "p1" {
		t.Fatalf("args = %v", args)
	}
}

func TestDeleteRequiresConditions(t *testing.T) {
	if _, _, err := DeleteFrom("messages").ToSQL(); err == nil {
		t.Fatal("expected error for delete without conditions")
	}

	sql, args, err := DeleteFrom("messages").Where(Eq("id", "m1")).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL returned error: %v", err)
	}
	if sql != "DELETE FROM messages WHERE id = $1" {
		t.Fatalf("sql = %q", sql)
	}
	if len(args) != 1 {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID     string `db:"id"`
		Name   string `db:"name"`
		hidden string `db:"secret"`
		Skip   string `db:"-"`
	}

	sql, args, err := InsertModel("teams", row{ID: "t1", Name: "1. Mannschaft", hidden: "x", Skip: "y"}, "")
	if err != nil {
		t.Fatalf("InsertModel returned error: %v", err)
	}

	want := "INSERT INTO teams (id, name) VALUES ($1, $2)"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("args = %v, want 2 values", args)
	}
}
