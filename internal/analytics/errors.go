package analytics

import (
	"errors"
	"fmt"
)

// ErrUnresolvedQuestion marks an answer that references a question the
// catalog no longer has.
var ErrUnresolvedQuestion = errors.New("answer references an unresolved question")

type UnresolvedQuestionError struct {
	AnswerID   string
	QuestionID string
}

func (e *UnresolvedQuestionError) Error() string {
	return fmt.Sprintf("answer %s references question %s which could not be resolved", e.AnswerID, e.QuestionID)
}

func (e *UnresolvedQuestionError) Unwrap() error {
	return ErrUnresolvedQuestion
}
