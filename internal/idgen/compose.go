package idgen

import (
	"strings"
	"time"
)

// Delimiter joins the fields of every composed hash input.
const Delimiter = "-"

const (
	messageWordLimit  = 10
	flagExcerptLength = 20
)

type field struct {
	name  string
	value string
}

func compose(fields ...field) (string, error) {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return "", missing(f.name)
		}
		parts = append(parts, f.value)
	}
	return Hash12(strings.Join(parts, Delimiter)), nil
}

func stamp(name string, t time.Time) field {
	if t.IsZero() {
		return field{name: name}
	}
	return field{name: name, value: CanonicalTimestamp(t)}
}

// CourseID derives a course ID from its name and creation time.
func CourseID(name string, createdAt time.Time) (string, error) {
	return compose(
		field{"courseName", name},
		stamp("createdAt", createdAt),
	)
}

// DivisionID derives the ID of a topic or week instance.
func DivisionID(title, courseName string, at time.Time) (string, error) {
	return compose(
		field{"title", title},
		field{"courseName", courseName},
		stamp("timestamp", at),
	)
}

func ItemID(title, divisionTitle, courseName string, at time.Time) (string, error) {
	return compose(
		field{"title", title},
		field{"divisionTitle", divisionTitle},
		field{"courseName", courseName},
		stamp("timestamp", at),
	)
}

func ObjectiveID(text, itemTitle, divisionTitle, courseName string, createdAt time.Time) (string, error) {
	return compose(
		field{"objective", text},
		field{"itemTitle", itemTitle},
		field{"divisionTitle", divisionTitle},
		field{"courseName", courseName},
		stamp("createdAt", createdAt),
	)
}

func MaterialID(name, itemTitle, divisionTitle, courseName string, at time.Time) (string, error) {
	return compose(
		field{"materialName", name},
		field{"itemTitle", itemTitle},
		field{"divisionTitle", divisionTitle},
		field{"courseName", courseName},
		stamp("timestamp", at),
	)
}

// UserID derives a global user ID. It carries no timestamp, so the same
// person always maps to the same ID.
func UserID(puid, displayName, affiliation string) (string, error) {
	return compose(
		field{"puid", puid},
		field{"displayName", displayName},
		field{"affiliation", affiliation},
	)
}

func ChatID(userID, courseName string, createdAt time.Time) (string, error) {
	return compose(
		field{"userId", userID},
		field{"courseName", courseName},
		stamp("createdAt", createdAt),
	)
}

// MessageID hashes only the leading words of text, see MessageWords.
func MessageID(text, chatID string, at time.Time) (string, error) {
	return compose(
		field{"text", MessageWords(text)},
		field{"chatId", chatID},
		stamp("timestamp", at),
	)
}

// FlagID derives a flag ID from an excerpt of the flagged content, the reporter,
// the course and the report time.
func FlagID(content, reporterID, courseName string, at time.Time) (string, error) {
	return compose(
		field{"content", FlagExcerpt(content)},
		field{"reporterId", reporterID},
		field{"courseName", courseName},
		stamp("timestamp", at),
	)
}

// LegacyFlagID reproduces flag IDs issued before the content excerpt was part of
// the input. Its input has the same shape as ChatID, so a legacy flag and a chat
// created by the same user in the same course at the same instant collide.
// Use it only to look up old rows.
func LegacyFlagID(reporterID, courseName string, at time.Time) (string, error) {
	return compose(
		field{"reporterId", reporterID},
		field{"courseName", courseName},
		stamp("timestamp", at),
	)
}

// MessageWords returns the first ten whitespace-delimited words of text joined
// by single spaces.
func MessageWords(text string) string {
	words := strings.Fields(text)
	if len(words) > messageWordLimit {
		words = words[:messageWordLimit]
	}
	return strings.Join(words, " ")
}

// FlagExcerpt returns the first twenty characters (runes) of content.
func FlagExcerpt(content string) string {
	r := []rune(content)
	if len(r) > flagExcerptLength {
		r = r[:flagExcerptLength]
	}
	return string(r)
}
