package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CorrectAnswer holds either a single answer or a set of equivalent answers
// (grid-in questions). It serializes as a JSON string or a JSON array, and is
// stored through datatypes.JSONType on Question.
type CorrectAnswer struct {
	values []string
	multi  bool
}

func NewCorrectAnswer(value string) CorrectAnswer {
	return CorrectAnswer{values: []string{value}}
}

func NewCorrectAnswerSet(values ...string) CorrectAnswer {
	return CorrectAnswer{values: append([]string(nil), values...), multi: true}
}

// Values returns the accepted answers. The slice is a copy.
func (c CorrectAnswer) Values() []string {
	return append([]string(nil), c.values...)
}

func (c CorrectAnswer) IsSet() bool {
	return c.multi
}

// Accepts reports whether answer matches any accepted form, ignoring case and
// surrounding whitespace.
func (c CorrectAnswer) Accepts(answer string) bool {
	answer = strings.TrimSpace(answer)
	for _, v := range c.values {
		if strings.EqualFold(strings.TrimSpace(v), answer) {
			return true
		}
	}
	return false
}

func (c CorrectAnswer) String() string {
	return strings.Join(c.values, " | ")
}

func (c CorrectAnswer) MarshalJSON() ([]byte, error) {
	if c.multi {
		if c.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(c.values)
	}
	if len(c.values) == 0 {
		return []byte(`""`), nil
	}
	return json.Marshal(c.values[0])
}

func (c *CorrectAnswer) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*c = CorrectAnswer{}
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("correct answer set: %w", err)
		}
		*c = NewCorrectAnswerSet(values...)
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("correct answer must be a string or an array of strings: %w", err)
	}
	*c = NewCorrectAnswer(value)
	return nil
}
