package common

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindAuthentication ErrorKind = iota
	KindAuthorization
	KindValidation
	KindPersistence
)

// ActionError is the failure contract of every mutating action: a class, an
// HTTP status and a user-facing message. Internal causes stay in the logs.
type ActionError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *ActionError) Error() string {
	return e.Message
}

func AuthenticationRequired() *ActionError {
	return &ActionError{
		Kind:    KindAuthentication,
		Status:  http.StatusUnauthorized,
		Message: "You must be logged in to carry out this action",
	}
}

func NotAllowed(message string) *ActionError {
	return &ActionError{Kind: KindAuthorization, Status: http.StatusForbidden, Message: message}
}

func Invalid(message string) *ActionError {
	return &ActionError{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

func PersistenceFailure(message string) *ActionError {
	return &ActionError{Kind: KindPersistence, Status: http.StatusUnprocessableEntity, Message: message}
}

// StatusOf maps any error to a response status, falling back to 400 for
// errors raised outside the action taxonomy.
func StatusOf(err error) int {
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusBadRequest
}
