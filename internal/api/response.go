package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zapponejosh/bahire-hasab/internal/bahirehasab"
	"github.com/zapponejosh/bahire-hasab/internal/calendar"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
	"github.com/zapponejosh/bahire-hasab/internal/i18n"
)

// Response represents a standard API response.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error codes returned in ErrorInfo.Code.
const (
	CodeBadRequest           = "BAD_REQUEST"
	CodeNotFound             = "NOT_FOUND"
	CodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	CodeInternal             = "INTERNAL_ERROR"
	CodeHealthCheckFailed    = "HEALTH_CHECK_FAILED"
	CodeInvalidInputType     = "INVALID_INPUT_TYPE"
	CodeInvalidEthiopianDate = "INVALID_ETHIOPIAN_DATE"
	CodeInvalidGregorianDate = "INVALID_GREGORIAN_DATE"
	CodeInvalidDateFormat    = "INVALID_DATE_FORMAT"
	CodeUnknownHoliday       = "UNKNOWN_HOLIDAY"
	CodeUnsupportedLanguage  = "UNSUPPORTED_LANGUAGE"
	CodeUnknownTag           = "UNKNOWN_TAG"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, status int, message string, code ...string) error {
	errInfo := ErrorInfo{
		Message: message,
	}
	if len(code) > 0 {
		errInfo.Code = code[0]
	}

	return WriteJSON(w, status, Response{
		Success: false,
		Error:   &errInfo,
	})
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, CodeNotFound)
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, CodeBadRequest)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, CodeInternal)
}

// errorStatus maps a calendar or catalog error to an HTTP status and code.
// ok is false for errors that are not caused by the request.
func errorStatus(err error) (status int, code string, ok bool) {
	switch {
	case errors.Is(err, calendar.ErrInvalidInputType):
		return http.StatusBadRequest, CodeInvalidInputType, true
	case errors.Is(err, calendar.ErrInvalidEthiopianDate):
		return http.StatusBadRequest, CodeInvalidEthiopianDate, true
	case errors.Is(err, calendar.ErrInvalidGregorianDate):
		return http.StatusBadRequest, CodeInvalidGregorianDate, true
	case errors.Is(err, calendar.ErrInvalidDateFormat):
		return http.StatusBadRequest, CodeInvalidDateFormat, true
	case errors.Is(err, bahirehasab.ErrUnknownHoliday):
		return http.StatusNotFound, CodeUnknownHoliday, true
	case errors.Is(err, i18n.ErrUnsupportedLanguage):
		return http.StatusBadRequest, CodeUnsupportedLanguage, true
	case errors.Is(err, holiday.ErrUnknownTag):
		return http.StatusBadRequest, CodeUnknownTag, true
	default:
		return http.StatusInternalServerError, CodeInternal, false
	}
}
