package testutil

import (
	"context"
	"testing"
)

func TestSeedFixturesUseDerivedIDs(t *testing.T) {
	ctx := context.Background()
	tx := Tx(t, DB(t))

	c := SeedCourse(t, ctx, tx, "CHBE241")
	if c.ID != "a4baf56df0c8" || c.Code != "K6T1OK" {
		t.Fatalf("course: want=a4baf56df0c8/K6T1OK got=%s/%s", c.ID, c.Code)
	}
	d := SeedDivision(t, ctx, tx, c, "Week 1")
	if d.ID != "2c9064c2adf6" {
		t.Fatalf("division: want=%q got=%q", "2c9064c2adf6", d.ID)
	}
	it := SeedItem(t, ctx, tx, c, d, "Intro")
	if it.ID != "2b89664f91a5" {
		t.Fatalf("item: want=%q got=%q", "2b89664f91a5", it.ID)
	}
	u := SeedUser(t, ctx, tx, "12345678", "Ada Lovelace")
	if u.ID != "0af35db2ec9d" {
		t.Fatalf("user: want=%q got=%q", "0af35db2ec9d", u.ID)
	}
}

func TestMustIDPassesThroughID(t *testing.T) {
	if got := mustID(t)("abc123abc123", nil); got != "abc123abc123" {
		t.Fatalf("mustID: want=%q got=%q", "abc123abc123", got)
	}
}
