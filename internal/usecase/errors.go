package usecase

import "errors"

// DomainError is a caller mistake (bad input, unknown id). Handlers map it to 4xx.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is an infrastructure failure (store unavailable). Handlers map it to 5xx.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

func storeError(op string, err error) error {
	return &TechnicalError{Code: "STORE_ERROR", Message: "failed to " + op, Err: err}
}
