package user

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/coursekey/internal/data/repos/testutil"
	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
)

func TestUserRepoUpsertKeepsID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewUserRepo(db, testutil.Logger(t))

	first := &domain.User{
		ID:          "0af35db2ec9d",
		PUID:        "12345678",
		DisplayName: "Ada Lovelace",
		Affiliation: "student",
		CreatedAt:   testutil.RefTime,
		UpdatedAt:   testutil.RefTime,
	}
	got, err := repo.Upsert(dbc, first)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("Upsert id: want=%q got=%q", first.ID, got.ID)
	}

	renamed := &domain.User{
		ID:          "ffffffffffff",
		PUID:        "12345678",
		DisplayName: "Ada King",
		Affiliation: "staff",
		CreatedAt:   testutil.RefTime.Add(time.Hour),
		UpdatedAt:   testutil.RefTime.Add(time.Hour),
	}
	got, err = repo.Upsert(dbc, renamed)
	if err != nil {
		t.Fatalf("Upsert renamed: %v", err)
	}
	if got.ID != first.ID || got.DisplayName != "Ada King" || got.Affiliation != "staff" {
		t.Fatalf("Upsert renamed: got=%+v", got)
	}
	if byID, err := repo.GetByID(dbc, first.ID); err != nil || byID.PUID != "12345678" {
		t.Fatalf("GetByID: err=%v got=%+v", err, byID)
	}
}
