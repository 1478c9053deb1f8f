package errs

import "github.com/gin-gonic/gin"

type CapturedError struct {
	gin.Error
	StatusCode int
}

// CaptureErrorHandler keeps every reported error, for callers that have no
// request to attach them to.
type CaptureErrorHandler struct {
	Errors []CapturedError
}

func NewCapturingErrorHandler() *CaptureErrorHandler {
	return &CaptureErrorHandler{}
}

func (e *CaptureErrorHandler) RenderError(err error) {
	e.Errors = append(e.Errors, CapturedError{Error: gin.Error{Err: err, Type: gin.ErrorTypeRender}})
}

func (e *CaptureErrorHandler) PublicError(statusCode int, err error) {
	e.Errors = append(e.Errors, CapturedError{Error: gin.Error{Err: err, Type: gin.ErrorTypePublic}, StatusCode: statusCode})
}

func (e *CaptureErrorHandler) PrivateError(err error) {
	e.Errors = append(e.Errors, CapturedError{Error: gin.Error{Err: err, Type: gin.ErrorTypePrivate}})
}

// LastPublic returns the most recent public error and its status code.
func (e *CaptureErrorHandler) LastPublic() (CapturedError, bool) {
	for i := len(e.Errors) - 1; i >= 0; i-- {
		if e.Errors[i].Type == gin.ErrorTypePublic {
			return e.Errors[i], true
		}
	}

	return CapturedError{}, false
}
