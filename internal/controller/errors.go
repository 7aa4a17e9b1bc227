package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/project/library/internal/entity"
	"go.uber.org/zap"
)

const (
	codeNotFound       = "E001"
	codeDuplicate      = "E002"
	codeInUse          = "E003"
	codeInvalidRequest = "E004"
	codeValidation     = "E005"
	codeMalformedJSON  = "E006"
	codeInternal       = "E999"
)

type errorResponse struct {
	Status    int               `json:"status"`
	ErrorCode string            `json:"errorCode"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Path      string            `json:"path"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// requestError is a request rejected before it reached a use case.
type requestError struct {
	code   string
	fields map[string]string
	cause  error
}

func (e *requestError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.code, e.cause)
	}
	return fmt.Sprintf("%s: %v", e.code, e.fields)
}

func (e *requestError) Unwrap() error {
	return e.cause
}

func malformedJSON(cause error) error {
	return &requestError{code: codeMalformedJSON, cause: cause}
}

func invalidField(field, message string) error {
	return &requestError{code: codeValidation, fields: map[string]string{field: message}}
}

func invalidRequest(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &requestError{code: codeValidation, cause: err}
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &requestError{code: codeValidation, fields: fields, cause: err}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

// present turns any error a handler returned into the response body.
func present(err error) errorResponse {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		if reqErr.code == codeMalformedJSON {
			return errorResponse{Status: http.StatusBadRequest, ErrorCode: codeMalformedJSON, Message: "Invalid JSON format"}
		}
		return errorResponse{
			Status:    http.StatusBadRequest,
			ErrorCode: codeValidation,
			Message:   "Validation failed",
			Errors:    reqErr.fields,
		}
	}

	if e, ok := entity.AsError(err); ok {
		return presentEntity(e)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		resp := errorResponse{Status: httpErr.Code, Message: fmt.Sprint(httpErr.Message)}
		switch {
		case httpErr.Code == http.StatusNotFound:
			resp.ErrorCode = codeNotFound
		case httpErr.Code < http.StatusInternalServerError:
			resp.ErrorCode = codeInvalidRequest
		default:
			resp.ErrorCode = codeInternal
		}
		return resp
	}

	return errorResponse{Status: http.StatusInternalServerError, ErrorCode: codeInternal, Message: "Internal server error"}
}

func presentEntity(e *entity.Error) errorResponse {
	if e.Reason == entity.ReasonInvalidField {
		return errorResponse{
			Status:    http.StatusBadRequest,
			ErrorCode: codeValidation,
			Message:   "Validation failed",
			Errors:    causeFields(e.Cause),
		}
	}

	resp := errorResponse{Message: message(e)}
	switch {
	case errors.Is(e, entity.ErrNotFound):
		resp.Status, resp.ErrorCode = http.StatusNotFound, codeNotFound
	case errors.Is(e, entity.ErrDuplicateResource):
		resp.Status, resp.ErrorCode = http.StatusConflict, codeDuplicate
	case errors.Is(e, entity.ErrResourceInUse):
		resp.Status, resp.ErrorCode = http.StatusConflict, codeInUse
	case errors.Is(e, entity.ErrInvalidRequest):
		resp.Status, resp.ErrorCode = http.StatusBadRequest, codeInvalidRequest
	default:
		resp.Status, resp.ErrorCode = http.StatusInternalServerError, codeInternal
		resp.Message = "Internal server error"
	}
	return resp
}

func causeFields(cause error) map[string]string {
	var errs validation.Errors
	if !errors.As(cause, &errs) {
		if cause == nil {
			return nil
		}
		return map[string]string{"request": cause.Error()}
	}

	fields := make(map[string]string, len(errs))
	for field, err := range errs {
		fields[field] = err.Error()
	}
	return fields
}

func resourceName(r entity.Resource) string {
	s := string(r)
	if s == "" {
		return "Resource"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func message(e *entity.Error) string {
	switch e.Reason {
	case entity.ReasonNotFound:
		return fmt.Sprintf("%s not found: id=%d", resourceName(e.Resource), e.ID)
	case entity.ReasonAlreadyRented:
		if e.Status == "" {
			return fmt.Sprintf("Book %d is already rented", e.ID)
		}
		return fmt.Sprintf("Book %d is already rented (rental status %s)", e.ID, e.Status)
	case entity.ReasonNotRentable:
		return fmt.Sprintf("Book %d can not be rented in status %s", e.ID, e.Status)
	case entity.ReasonAlreadyReturned:
		return fmt.Sprintf("Rental %d is already returned", e.ID)
	case entity.ReasonRentalActive:
		return fmt.Sprintf("Book %d has an active rental (status %s), its status can not be changed", e.ID, e.Status)
	case entity.ReasonDueDateInPast:
		return fmt.Sprintf("Due date %s is in the past", e.DueDate.Format(entity.DateLayout))
	case entity.ReasonDuplicateName:
		return fmt.Sprintf("%s %q already exists", resourceName(e.Resource), e.Name)
	default:
		return e.Error()
	}
}

func (i *implementation) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := present(err)
	resp.Timestamp = i.now().UTC()
	resp.Path = c.Request().URL.Path

	fields := []zap.Field{
		zap.String("path", resp.Path),
		zap.Int("status", resp.Status),
		zap.String("error_code", resp.ErrorCode),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	}
	if i.logger != nil {
		if resp.Status >= http.StatusInternalServerError {
			i.logger.Error("request failed", fields...)
		} else {
			i.logger.Info("request rejected", fields...)
		}
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(resp.Status)
	} else {
		err = c.JSON(resp.Status, resp)
	}
	if err != nil && i.logger != nil {
		i.logger.Error("can not write error response", zap.Error(err))
	}
}
