package formalizer

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/transcript-flow/internal/credential"
)

var ErrEmptyInput = errors.New("transcript is empty")

// ErrorKind classifies failures of a user-triggered operation.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindMissingCredential
	KindInvalidCredentialFormat
	KindEmptyInput
	KindTransformFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMissingCredential:
		return "missing_credential"
	case KindInvalidCredentialFormat:
		return "invalid_credential_format"
	case KindEmptyInput:
		return "empty_input"
	case KindTransformFailure:
		return "transform_failure"
	default:
		return "unknown"
	}
}

// Kind classifies err. Anything that is not an input or credential problem
// is a transform failure.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, credential.ErrInvalidCredentialFormat):
		return KindInvalidCredentialFormat
	case errors.Is(err, credential.ErrMissingCredential):
		return KindMissingCredential
	default:
		return KindTransformFailure
	}
}

// UserMessage renders err for display to the end user.
func UserMessage(err error) string {
	switch Kind(err) {
	case KindNone:
		return ""
	case KindEmptyInput:
		return "Please enter the transcript text."
	case KindMissingCredential:
		return "No API key is set. Pass -api-key, save one with 'formalizer key set', or set the provider's environment variable."
	case KindInvalidCredentialFormat:
		return fmt.Sprintf("The API key format is not valid (%v).", err)
	default:
		return fmt.Sprintf("An error occurred: %v", err)
	}
}
