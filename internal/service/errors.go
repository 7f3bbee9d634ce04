package service

import (
	"errors"
	"sort"
	"strings"
)

// ErrRemoteCall marks failures talking to the recommendation backend.
var ErrRemoteCall = errors.New("remote call failed")

// ValidationError reports form input that blocks a submission.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return e.Message + " (" + strings.Join(keys, ", ") + ")"
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
