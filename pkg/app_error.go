package pkg

// AppError is the error shape handlers render to HTTP clients.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Retryable  bool
	Err        error
}

// HTTPError is the JSON body sent for failed requests.
type HTTPError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// AsRetryable flags the error as safe for the caller to retry.
func (e *AppError) AsRetryable() *AppError {
	e.Retryable = true
	return e
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Retryable: e.Retryable}
}
