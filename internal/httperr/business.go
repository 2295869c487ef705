package httperr

import "errors"

// BusinessError flows up from usecases as a machine-readable code; the
// handler layer maps codes to HTTP statuses.
type BusinessError struct {
	Code string

	// Detail optionally names the entity involved, e.g. the id of the
	// booking a new one collides with.
	Detail string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessDetail(code, detail string) error {
	return BusinessError{Code: code, Detail: detail}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessDetail(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Detail
	}
	return ""
}
