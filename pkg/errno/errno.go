package errno

import (
	"errors"
	"net/http"
)

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
	Status  int
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage 返回同一错误码、不同描述的副本
func (e Errno) WithMessage(msg string) Errno {
	e.Message = msg
	return e
}

// Is 按错误码比较，WithMessage 派生的错误仍与原错误相等
func (e Errno) Is(target error) bool {
	var t Errno
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var e Errno
	if errors.As(err, &e) {
		return e.Code, e.Message
	}
	var pe *Errno
	if errors.As(err, &pe) && pe != nil {
		return pe.Code, pe.Message
	}
	return InternalServerError.Code, err.Error()
}

// HTTPStatus 返回错误对应的 HTTP 状态码，未知错误按 500 处理
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var e Errno
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success", Status: http.StatusOK}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error", Status: http.StatusInternalServerError}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct", Status: http.StatusBadRequest}
	ErrNotFound         = Errno{Code: 10003, Message: "Not found", Status: http.StatusNotFound}
)

// Conversion Errors (30000+)
var (
	ErrEmptyInput         = Errno{Code: 30000, Message: "No private key provided", Status: http.StatusBadRequest}
	ErrInvalidKeyFormat   = Errno{Code: 30001, Message: "Invalid Bitcoin private key format. Please provide a valid WIF or 64-character hex string.", Status: http.StatusBadRequest}
	ErrInvalidMnemonic    = Errno{Code: 30002, Message: "Invalid mnemonic or conversion failed", Status: http.StatusBadRequest}
	ErrWordlistDetection  = Errno{Code: 30003, Message: "Could not detect the mnemonic language", Status: http.StatusBadRequest}
	ErrInternalConversion = Errno{Code: 30004, Message: "Conversion failed", Status: http.StatusInternalServerError}
)
