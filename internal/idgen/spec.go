package idgen

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	KindCourse     Kind = "course"
	KindDivision   Kind = "division"
	KindItem       Kind = "item"
	KindObjective  Kind = "objective"
	KindMaterial   Kind = "material"
	KindUser       Kind = "user"
	KindChat       Kind = "chat"
	KindMessage    Kind = "message"
	KindFlag       Kind = "flag"
	KindLegacyFlag Kind = "legacy_flag"
)

// Spec describes one entity by kind plus the fields its ID function consumes.
// Fields a kind does not use are ignored. Timestamp is a string so JSON and YAML
// callers can pass it verbatim; see ParseTimestamp for accepted forms.
type Spec struct {
	Kind          Kind   `json:"kind" yaml:"kind"`
	Title         string `json:"title,omitempty" yaml:"title,omitempty"`
	Text          string `json:"text,omitempty" yaml:"text,omitempty"`
	CourseName    string `json:"course_name,omitempty" yaml:"course_name,omitempty"`
	DivisionTitle string `json:"division_title,omitempty" yaml:"division_title,omitempty"`
	ItemTitle     string `json:"item_title,omitempty" yaml:"item_title,omitempty"`
	PUID          string `json:"puid,omitempty" yaml:"puid,omitempty"`
	DisplayName   string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Affiliation   string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	UserID        string `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	ChatID        string `json:"chat_id,omitempty" yaml:"chat_id,omitempty"`
	Timestamp     string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// ID dispatches to the ID function for s.Kind.
func (s Spec) ID() (string, error) {
	switch s.Kind {
	case KindUser:
		return UserID(s.PUID, s.DisplayName, s.Affiliation)
	case KindCourse, KindDivision, KindItem, KindObjective, KindMaterial,
		KindChat, KindMessage, KindFlag, KindLegacyFlag:
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, s.Kind)
	}
	at, err := s.time()
	if err != nil {
		return "", err
	}
	switch s.Kind {
	case KindCourse:
		return CourseID(s.CourseName, at)
	case KindDivision:
		return DivisionID(s.Title, s.CourseName, at)
	case KindItem:
		return ItemID(s.Title, s.DivisionTitle, s.CourseName, at)
	case KindObjective:
		return ObjectiveID(s.Text, s.ItemTitle, s.DivisionTitle, s.CourseName, at)
	case KindMaterial:
		return MaterialID(s.Title, s.ItemTitle, s.DivisionTitle, s.CourseName, at)
	case KindChat:
		return ChatID(s.UserID, s.CourseName, at)
	case KindMessage:
		return MessageID(s.Text, s.ChatID, at)
	case KindFlag:
		return FlagID(s.Text, s.UserID, s.CourseName, at)
	case KindLegacyFlag:
		return LegacyFlagID(s.UserID, s.CourseName, at)
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, s.Kind)
}

// Code returns the join code for a course spec.
func (s Spec) Code() (string, error) {
	if s.Kind != KindCourse {
		return "", fmt.Errorf("%w: join codes exist only for courses, got %q", ErrInvalidInput, s.Kind)
	}
	at, err := s.time()
	if err != nil {
		return "", err
	}
	return CourseCode(s.CourseName, at)
}

func (s Spec) time() (time.Time, error) {
	raw := strings.TrimSpace(s.Timestamp)
	if raw == "" {
		return time.Time{}, missing("timestamp")
	}
	at, err := ParseTimestamp(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q: %v", ErrInvalidInput, raw, err)
	}
	return at, nil
}
