package services

import (
	"context"
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidInput    ErrorKind = "invalid_input"
	KindUnprocessable   ErrorKind = "unprocessable_document"
	KindUpstream        ErrorKind = "upstream_error"
	KindUpstreamTimeout ErrorKind = "upstream_timeout"
	KindInternal        ErrorKind = "internal_error"
)

// ReviewError tags a pipeline failure with the stage that produced it.
// Message is safe to show to clients; Err is only meant for logs.
type ReviewError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

func newReviewError(kind ErrorKind, message string, err error) *ReviewError {
	return &ReviewError{Kind: kind, Message: message, Err: err}
}

func InvalidInput(message string) *ReviewError {
	return newReviewError(KindInvalidInput, message, nil)
}

// upstreamError classifies an LLM failure, separating expired deadlines
// from everything else the service can return.
func upstreamError(err error) *ReviewError {
	if errors.Is(err, context.DeadlineExceeded) {
		return newReviewError(KindUpstreamTimeout, "the review service did not respond in time", err)
	}
	return newReviewError(KindUpstream, "the review service is unavailable, please try again later", err)
}

// KindOf returns the tag of the first ReviewError in err's chain,
// or KindInternal when there is none.
func KindOf(err error) ErrorKind {
	var reviewErr *ReviewError
	if errors.As(err, &reviewErr) {
		return reviewErr.Kind
	}
	return KindInternal
}
