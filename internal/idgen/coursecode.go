package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CodeLength is the length of a course join code.
const CodeLength = 6

// CourseCode derives the 6-character join code of a course. It hashes the same
// input as CourseID, so EncodeCourseCode(CourseID(...)) yields the same code.
func CourseCode(courseName string, createdAt time.Time) (string, error) {
	id, err := CourseID(courseName, createdAt)
	if err != nil {
		return "", err
	}
	return EncodeCourseCode(id)
}

// EncodeCourseCode maps each byte of a 12-hex hash onto [0-9A-Z] by reducing it
// modulo 36. 256 is not a multiple of 36, so '0' through '3' are slightly more
// likely than the other symbols; changing that would invalidate issued codes.
func EncodeCourseCode(hex12 string) (string, error) {
	if len(hex12) != 2*CodeLength {
		return "", fmt.Errorf("%w: course hash must be %d hex characters, got %d", ErrInvalidInput, 2*CodeLength, len(hex12))
	}
	var b strings.Builder
	b.Grow(CodeLength)
	for i := 0; i < len(hex12); i += 2 {
		v, err := strconv.ParseUint(hex12[i:i+2], 16, 8)
		if err != nil {
			return "", fmt.Errorf("%w: course hash %q: %v", ErrInvalidInput, hex12, err)
		}
		b.WriteByte(codeAlphabet[v%36])
	}
	return b.String(), nil
}

// NormalizeCourseCode trims and upper-cases a code typed by a user.
func NormalizeCourseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidCourseCode reports whether code is exactly six characters of [0-9A-Z].
func ValidCourseCode(code string) bool {
	if len(code) != CodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !(c >= '0' && c <= '9') && !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
