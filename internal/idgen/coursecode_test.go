package idgen

import (
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"
)

var codePattern = regexp.MustCompile(`^[0-9A-Z]{6}$`)

func TestCourseCodeVector(t *testing.T) {
	got, err := CourseCode("CHBE241", refTime)
	if err != nil {
		t.Fatalf("CourseCode: %v", err)
	}
	if got != "K6T1OK" {
		t.Fatalf("CourseCode: want=%q got=%q", "K6T1OK", got)
	}
}

func TestCourseCodeStable(t *testing.T) {
	a, _ := CourseCode("CHBE241", refTime)
	b, _ := CourseCode("CHBE241", refTime)
	if a != b {
		t.Fatalf("CourseCode not stable: %q vs %q", a, b)
	}
	c, _ := CourseCode("CHBE241", refTime.Add(time.Millisecond))
	if c != "MJ28IX" {
		t.Fatalf("CourseCode +1ms: want=%q got=%q", "MJ28IX", c)
	}
}

func TestCourseCodeMatchesCourseID(t *testing.T) {
	id, err := CourseID("CHBE241", refTime)
	if err != nil {
		t.Fatalf("CourseID: %v", err)
	}
	fromID, err := EncodeCourseCode(id)
	if err != nil {
		t.Fatalf("EncodeCourseCode: %v", err)
	}
	direct, _ := CourseCode("CHBE241", refTime)
	if fromID != direct {
		t.Fatalf("code from id: want=%q got=%q", direct, fromID)
	}
}

func TestEncodeCourseCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ca6b9e3779b9", "MZEJD5"},
		{"55e8751841e6", "DG9OTE"},
		{"000000000000", "000000"},
		// 0x23=35 -> Z, 0x24=36 -> 0, 0xff=255 -> 255%36=3
		{"2324ff0a0b09", "Z03AB9"},
	}
	for _, tc := range cases {
		got, err := EncodeCourseCode(tc.in)
		if err != nil {
			t.Fatalf("EncodeCourseCode(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("EncodeCourseCode(%q): want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestEncodeCourseCodeRejectsMalformedHash(t *testing.T) {
	for _, in := range []string{"", "abc", "zz0000000000", "ca6b9e3779b9ff"} {
		if _, err := EncodeCourseCode(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("EncodeCourseCode(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestCourseCodeFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := CourseCode(fmt.Sprintf("COURSE%03d", i), refTime.Add(time.Duration(i)*time.Hour))
		if err != nil {
			t.Fatalf("CourseCode: %v", err)
		}
		if !codePattern.MatchString(code) {
			t.Fatalf("CourseCode=%q does not match %s", code, codePattern)
		}
	}
}

// The modulo-36 reduction is intentionally biased toward the first four symbols.
func TestCourseCodeAlphabetBias(t *testing.T) {
	counts := make(map[byte]int, 36)
	for v := 0; v < 256; v++ {
		counts[codeAlphabet[v%36]]++
	}
	for i := 0; i < len(codeAlphabet); i++ {
		want := 7
		if i < 4 {
			want = 8
		}
		if got := counts[codeAlphabet[i]]; got != want {
			t.Fatalf("symbol %q: want=%d preimages got=%d", codeAlphabet[i], want, got)
		}
	}
}

func TestCourseCodeMissingInput(t *testing.T) {
	if _, err := CourseCode("", refTime); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("CourseCode empty name: expected ErrInvalidInput, got %v", err)
	}
}

func TestNormalizeAndValidateCourseCode(t *testing.T) {
	if got := NormalizeCourseCode("  k6t1ok "); got != "K6T1OK" {
		t.Fatalf("NormalizeCourseCode: got=%q", got)
	}
	valid := []string{"K6T1OK", "000000", "ZZZZZZ"}
	invalid := []string{"", "k6t1ok", "K6T1O", "K6T1OK1", "K6-1OK"}
	for _, c := range valid {
		if !ValidCourseCode(c) {
			t.Fatalf("ValidCourseCode(%q): want=true", c)
		}
	}
	for _, c := range invalid {
		if ValidCourseCode(c) {
			t.Fatalf("ValidCourseCode(%q): want=false", c)
		}
	}
}
