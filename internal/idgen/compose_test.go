package idgen

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

var refTime = time.Date(2024, time.September, 3, 17, 30, 0, 0, time.UTC)

func TestEntityIDVectors(t *testing.T) {
	ts := refTime
	cases := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"course", func() (string, error) { return CourseID("CHBE241", ts) }, "a4baf56df0c8"},
		{"division", func() (string, error) { return DivisionID("Week 1", "CHBE241", ts) }, "2c9064c2adf6"},
		{"item", func() (string, error) { return ItemID("Intro", "Week 1", "CHBE241", ts) }, "2b89664f91a5"},
		{"objective", func() (string, error) {
			return ObjectiveID("Define enthalpy", "Intro", "Week 1", "CHBE241", ts)
		}, "018d0a5f62f9"},
		{"material", func() (string, error) {
			return MaterialID("slides.pdf", "Intro", "Week 1", "CHBE241", ts)
		}, "312a06491122"},
		{"user", func() (string, error) { return UserID("12345678", "Ada Lovelace", "student") }, "0af35db2ec9d"},
		{"chat", func() (string, error) { return ChatID("u1", "CHBE241", ts) }, "dccffccfc501"},
		{"message", func() (string, error) {
			return MessageID("one two three four five six seven eight nine ten eleven twelve", "chat1", ts)
		}, "2c952bdac9fd"},
		{"flag", func() (string, error) {
			return FlagID("This answer is wrong because the sign is flipped", "u1", "CHBE241", ts)
		}, "e27d3806038c"},
		{"legacy flag", func() (string, error) { return LegacyFlagID("u1", "CHBE241", ts) }, "dccffccfc501"},
	}
	for _, tc := range cases {
		got, err := tc.fn()
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: want=%q got=%q", tc.name, tc.want, got)
		}
	}
}

func TestComposedInputMatchesHash12(t *testing.T) {
	got, err := ItemID("Intro", "Week 1", "CHBE241", refTime)
	if err != nil {
		t.Fatalf("ItemID: %v", err)
	}
	want := Hash12("Intro-Week 1-CHBE241-2024-09-03T17:30:00.000Z")
	if got != want {
		t.Fatalf("ItemID: want=%q got=%q", want, got)
	}
}

func TestFieldOrderChangesID(t *testing.T) {
	a, err := DivisionID("Week 1", "CHBE241", refTime)
	if err != nil {
		t.Fatalf("DivisionID: %v", err)
	}
	b, err := DivisionID("CHBE241", "Week 1", refTime)
	if err != nil {
		t.Fatalf("DivisionID swapped: %v", err)
	}
	if a == b {
		t.Fatalf("swapping title and course name kept id %q", a)
	}
	if b != "6ea4f1a71c91" {
		t.Fatalf("swapped division: want=%q got=%q", "6ea4f1a71c91", b)
	}
}

func TestSameTitleDifferentParentsDoNotCollide(t *testing.T) {
	a, _ := ItemID("Intro", "Week 1", "CHBE241", refTime)
	b, _ := ItemID("Intro", "Week 2", "CHBE241", refTime)
	c, _ := ItemID("Intro", "Week 1", "CHBE242", refTime)
	d, _ := ItemID("Intro", "Week 1", "CHBE241", refTime.Add(time.Millisecond))
	ids := map[string]bool{a: true, b: true, c: true, d: true}
	if len(ids) != 4 {
		t.Fatalf("expected 4 distinct ids, got %v", []string{a, b, c, d})
	}
}

func TestNoCollisionsAcrossSampledTitles(t *testing.T) {
	seen := make(map[string]string, 1000)
	for i := 0; i < 1000; i++ {
		title := fmt.Sprintf("Topic %d", i%97)
		at := refTime.Add(time.Duration(i) * 37 * time.Minute).Add(time.Duration(i%13) * time.Millisecond)
		id, err := DivisionID(title, "CHBE241", at)
		if err != nil {
			t.Fatalf("DivisionID: %v", err)
		}
		key := title + "@" + CanonicalTimestamp(at)
		if prev, ok := seen[id]; ok {
			t.Fatalf("collision on %q: %s and %s", id, prev, key)
		}
		seen[id] = key
	}
}

func TestMissingFieldsAreRejected(t *testing.T) {
	cases := []struct {
		name  string
		fn    func() (string, error)
		field string
	}{
		{"course name", func() (string, error) { return CourseID("", refTime) }, "courseName"},
		{"course blank name", func() (string, error) { return CourseID("   ", refTime) }, "courseName"},
		{"course zero time", func() (string, error) { return CourseID("CHBE241", time.Time{}) }, "createdAt"},
		{"division course", func() (string, error) { return DivisionID("Week 1", "", refTime) }, "courseName"},
		{"item division", func() (string, error) { return ItemID("Intro", "", "CHBE241", refTime) }, "divisionTitle"},
		{"objective text", func() (string, error) { return ObjectiveID("", "Intro", "Week 1", "CHBE241", refTime) }, "objective"},
		{"material item", func() (string, error) { return MaterialID("a.pdf", "", "Week 1", "CHBE241", refTime) }, "itemTitle"},
		{"user affiliation", func() (string, error) { return UserID("1", "Ada", "") }, "affiliation"},
		{"chat user", func() (string, error) { return ChatID("", "CHBE241", refTime) }, "userId"},
		{"message blank text", func() (string, error) { return MessageID(" \n\t ", "chat1", refTime) }, "text"},
		{"message chat", func() (string, error) { return MessageID("hi", "", refTime) }, "chatId"},
		{"flag content", func() (string, error) { return FlagID("", "u1", "CHBE241", refTime) }, "content"},
		{"flag time", func() (string, error) { return FlagID("x", "u1", "CHBE241", time.Time{}) }, "timestamp"},
	}
	for _, tc := range cases {
		id, err := tc.fn()
		if err == nil {
			t.Fatalf("%s: expected error, got id %q", tc.name, id)
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
		var ie *InvalidInputError
		if !errors.As(err, &ie) || ie.Field != tc.field {
			t.Fatalf("%s: field: want=%q got=%v", tc.name, tc.field, err)
		}
		if !strings.Contains(err.Error(), tc.field) {
			t.Fatalf("%s: message %q does not name %q", tc.name, err.Error(), tc.field)
		}
	}
}

func TestMessageWords(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"  hello \n  world  ", "hello world"},
		{"1 2 3 4 5 6 7 8 9 10", "1 2 3 4 5 6 7 8 9 10"},
		{"1 2 3 4 5 6 7 8 9 10 11", "1 2 3 4 5 6 7 8 9 10"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := MessageWords(tc.in); got != tc.want {
			t.Fatalf("MessageWords(%q): want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestMessageIDIgnoresTrailingWords(t *testing.T) {
	a, _ := MessageID("1 2 3 4 5 6 7 8 9 10 eleven", "chat1", refTime)
	b, _ := MessageID("1 2 3 4 5 6 7 8 9 10 something else entirely", "chat1", refTime)
	if a != b {
		t.Fatalf("words past the tenth changed the id: %q vs %q", a, b)
	}
}

func TestFlagExcerptCountsRunes(t *testing.T) {
	in := strings.Repeat("é", 25)
	if got := FlagExcerpt(in); got != strings.Repeat("é", 20) {
		t.Fatalf("FlagExcerpt: got=%q", got)
	}
	if got := FlagExcerpt("short"); got != "short" {
		t.Fatalf("FlagExcerpt short: got=%q", got)
	}
}

func TestCanonicalTimestamp(t *testing.T) {
	loc := time.FixedZone("PDT", -7*3600)
	at := time.Date(2024, time.September, 3, 10, 30, 0, 123456789, loc)
	if got := CanonicalTimestamp(at); got != "2024-09-03T17:30:00.123Z" {
		t.Fatalf("CanonicalTimestamp: got=%q", got)
	}
	if got := CanonicalTimestamp(refTime); got != "2024-09-03T17:30:00.000Z" {
		t.Fatalf("CanonicalTimestamp whole second: got=%q", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	for _, in := range []string{"2024-09-03T17:30:00.000Z", "2024-09-03T17:30:00Z", "2024-09-03T10:30:00-07:00"} {
		got, err := ParseTimestamp(in)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", in, err)
		}
		if !got.Equal(refTime) {
			t.Fatalf("ParseTimestamp(%q): want=%v got=%v", in, refTime, got)
		}
	}
	if _, err := ParseTimestamp("2024-09-03"); err == nil {
		t.Fatalf("ParseTimestamp date-only: expected error")
	}
}

func TestConcurrentCallsAgree(t *testing.T) {
	want, _ := ObjectiveID("Define enthalpy", "Intro", "Week 1", "CHBE241", refTime)
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := ObjectiveID("Define enthalpy", "Intro", "Week 1", "CHBE241", refTime)
			if err != nil || got != want {
				errs <- fmt.Sprintf("got=%q err=%v", got, err)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatalf("concurrent ObjectiveID: %s", e)
	}
}
