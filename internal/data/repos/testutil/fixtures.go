package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/idgen"
)

// RefTime is the creation time used by every seeded row.
var RefTime = time.Date(2024, time.September, 3, 17, 30, 0, 0, time.UTC)

// mustID fails tb when an ID derivation errors: mustID(tb)(idgen.CourseID(...)).
func mustID(tb testing.TB) func(string, error) string {
	return func(id string, err error) string {
		tb.Helper()
		if err != nil {
			tb.Fatalf("derive id: %v", err)
		}
		return id
	}
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *domain.Course {
	tb.Helper()
	id := mustID(tb)(idgen.CourseID(name, RefTime))
	code := mustID(tb)(idgen.EncodeCourseCode(id))
	c := &domain.Course{ID: id, Name: name, Code: code, CreatedAt: RefTime, UpdatedAt: RefTime}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedDivision(tb testing.TB, ctx context.Context, tx *gorm.DB, c *domain.Course, title string) *domain.Division {
	tb.Helper()
	d := &domain.Division{
		ID:        mustID(tb)(idgen.DivisionID(title, c.Name, RefTime)),
		CourseID:  c.ID,
		Kind:      domain.DivisionKindWeek,
		Title:     title,
		CreatedAt: RefTime,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed division: %v", err)
	}
	return d
}

func SeedItem(tb testing.TB, ctx context.Context, tx *gorm.DB, c *domain.Course, d *domain.Division, title string) *domain.Item {
	tb.Helper()
	it := &domain.Item{
		ID:         mustID(tb)(idgen.ItemID(title, d.Title, c.Name, RefTime)),
		DivisionID: d.ID,
		CourseID:   c.ID,
		Title:      title,
		CreatedAt:  RefTime,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed item: %v", err)
	}
	return it
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, puid, name string) *domain.User {
	tb.Helper()
	u := &domain.User{
		ID:          mustID(tb)(idgen.UserID(puid, name, "student")),
		PUID:        puid,
		DisplayName: name,
		Affiliation: "student",
		CreatedAt:   RefTime,
		UpdatedAt:   RefTime,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func PtrString(s string) *string { return &s }
