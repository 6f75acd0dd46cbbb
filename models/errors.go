package models

// FieldError is a single field-level validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorValidation carries the full list of field violations (400).
type ErrorValidation struct {
	Message    string
	Validation []FieldError
}

func (e ErrorValidation) Error() string { return e.Message }

// ErrorNotFound marks a missing record (404).
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

// ErrorUnauthorized marks an authentication failure (401). Validation is set
// for credential failures that cite a field, such as a wrong password.
type ErrorUnauthorized struct {
	Message    string
	Validation []FieldError
}

func (e ErrorUnauthorized) Error() string { return e.Message }

// ErrorForbidden marks an authorization policy failure (403).
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

// ErrorQuery is a storage-layer failure not classified as any of the above.
// Code is 400 or 500 depending on cause.
type ErrorQuery struct {
	Message string
	Code    int
	Err     error
}

func (e ErrorQuery) Error() string { return e.Message }
func (e ErrorQuery) Unwrap() error { return e.Err }

// ErrorInternalServer is an invariant violation (500).
type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string { return e.Message }
func (e ErrorInternalServer) Unwrap() error { return e.Err }
