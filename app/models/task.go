package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Task represents one task to be printed. It is transient: it lives for
// the duration of a single request and is never stored.
type Task struct {
	Title       string    `json:"title" validate:"notblank"`
	Description string    `json:"description" validate:"notblank"`
	CreatedOn   LocalTime `json:"created_on" validate:"-"`
	DueBy       LocalTime `json:"due_by" validate:"-"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "required" alone accepts whitespace-only strings.
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate checks that title and description carry non-blank text and
// that both timestamps were supplied.
func (t Task) Validate() error {
	if err := validate.Struct(t); err != nil {
		return err
	}
	if t.CreatedOn.IsZero() || t.DueBy.IsZero() {
		return errors.New("created_on and due_by are required")
	}
	return nil
}

// receiptLayout is how timestamps appear on the printed receipt.
const receiptLayout = "2006-01-02 15:04"

// timeLayouts are accepted on input, most specific first. The last one is
// the browser's datetime-local format.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// LocalTime is a timestamp that accepts ISO-8601 local date-time strings
// as produced by <input type="datetime-local">.
type LocalTime struct {
	time.Time
}

// ParseLocalTime parses s against the accepted layouts.
func ParseLocalTime(s string) (LocalTime, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return LocalTime{t}, nil
		}
	}
	return LocalTime{}, fmt.Errorf("invalid date/time %q", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	lt, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*t = lt
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}

// Receipt renders the timestamp the way it appears on paper.
func (t LocalTime) Receipt() string {
	return t.Format(receiptLayout)
}
