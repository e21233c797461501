/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrDataNotFound    = errors.New("data not found")
	ErrProfileInactive = errors.New("profile not active")
	ErrProfileNotFound = errors.New("profile doesn't exist")
)

// ErrorCode is a proprietary error code, not defined by any RFC/OpenID specification this
// module implements: the errors this file's constructors produce are our own internal
// failures (storage, config, profile lookup), distinct from the wire-level errors reported
// under resterr/oidc4vp.
type ErrorCode string

func (c ErrorCode) Name() string {
	return string(c)
}

//nolint:gosec
const (
	SystemError     ErrorCode = "system-error"
	InvalidValue    ErrorCode = "invalid-value"
	AlreadyExist    ErrorCode = "already-exist"
	DoesntExist     ErrorCode = "doesnt-exist"
	DataNotFound    ErrorCode = "data-not-found"
	BadRequest      ErrorCode = "bad-request"
	ConditionNotMet ErrorCode = "condition-not-met"
	ProfileNotFound ErrorCode = "profile-not-found"
	Forbidden       ErrorCode = "forbidden"
	Unauthorized    ErrorCode = "unauthorized"
)

var defaultHTTPStatus = map[ErrorCode]int{ //nolint:gochecknoglobals
	SystemError:     http.StatusInternalServerError,
	InvalidValue:    http.StatusBadRequest,
	AlreadyExist:    http.StatusConflict,
	DoesntExist:     http.StatusNotFound,
	DataNotFound:    http.StatusNotFound,
	BadRequest:      http.StatusBadRequest,
	ConditionNotMet: http.StatusPreconditionFailed,
	ProfileNotFound: http.StatusNotFound,
	Forbidden:       http.StatusForbidden,
	Unauthorized:    http.StatusUnauthorized,
}

// CustomError is the internal-failure error type: a proprietary code plus whichever of
// component/operation (system errors) or incorrectValue (validation errors) applies.
type CustomError struct {
	Code           ErrorCode
	Component      Component
	Operation      string
	IncorrectValue string
	HTTPStatus     int
	Err            error
}

func NewCustomError(code ErrorCode, err error) *CustomError {
	return &CustomError{Code: code, Err: err, HTTPStatus: defaultHTTPStatus[code]}
}

func NewSystemError(component Component, operation string, err error) *CustomError {
	return &CustomError{
		Code:       SystemError,
		Component:  component,
		Operation:  operation,
		Err:        err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func NewValidationError(code ErrorCode, incorrectValue string, err error) *CustomError {
	return &CustomError{
		Code:           code,
		IncorrectValue: incorrectValue,
		Err:            err,
		HTTPStatus:     defaultHTTPStatus[code],
	}
}

func NewUnauthorizedError(err error) *CustomError {
	return &CustomError{Code: Unauthorized, Err: err, HTTPStatus: http.StatusUnauthorized}
}

func (e *CustomError) Error() string {
	var context []string

	if e.Component != "" {
		context = append(context, string(e.Component))
	}

	if e.Operation != "" {
		context = append(context, e.Operation)
	}

	if e.IncorrectValue != "" {
		context = append(context, e.IncorrectValue)
	}

	if len(context) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Err)
	}

	return fmt.Sprintf("%s[%s]: %s", e.Code, strings.Join(context, ", "), e.Err)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func (e *CustomError) HTTPCodeMsg() (int, interface{}) {
	return e.HTTPStatus, map[string]interface{}{
		"code":    e.Code.Name(),
		"message": e.Err.Error(),
	}
}

// GetErrorDetails unwraps err looking for a CustomError, returning the underlying message,
// its proprietary code, and the component that raised it. For any other error it returns
// just the message.
func GetErrorDetails(err error) (string, string, Component) {
	var customErr *CustomError

	if errors.As(err, &customErr) {
		return customErr.Err.Error(), string(customErr.Code), customErr.Component
	}

	return err.Error(), "", ""
}
