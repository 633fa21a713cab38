package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorResponse is the body rendered for typed and unexpected failures.
type ErrorResponse struct {
	ErrorTitle       string `json:"error_title"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is the body rendered for 400 responses.
type ValidationErrorResponse struct {
	ErrorTitle string   `json:"error_title"`
	Errors     []string `json:"errors"`
}

// ErrorHandler handles errors and sends appropriate HTTP responses
type ErrorHandler struct {
	logger *zap.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle processes an error and sends an HTTP response
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	appErr := GetAppError(err)
	if appErr == nil {
		h.logger.Error("Unhandled error",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
		h.sendJSON(w, http.StatusInternalServerError, ErrorResponse{
			ErrorTitle:       UnexpectedTitle,
			ErrorDescription: err.Error(),
		})
		return
	}

	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusInternalServerError
	}
	h.logError(r, appErr, status)

	if appErr.Type == ErrorTypeValidation {
		messages := appErr.Errors
		if messages == nil {
			messages = []string{}
		}
		h.sendJSON(w, status, ValidationErrorResponse{
			ErrorTitle: appErr.Title,
			Errors:     messages,
		})
		return
	}

	h.sendJSON(w, status, ErrorResponse{
		ErrorTitle:       appErr.Title,
		ErrorDescription: appErr.Message,
	})
}

// logError logs an application error with appropriate level
func (h *ErrorHandler) logError(r *http.Request, err *AppError, status int) {
	fields := []zap.Field{
		zap.String("error_type", string(err.Type)),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	}
	if len(err.Errors) > 0 {
		fields = append(fields, zap.Strings("violations", err.Errors))
	}
	if err.Cause != nil {
		fields = append(fields, zap.NamedError("cause", err.Cause))
	}

	if status >= 500 {
		fields = append(fields, zap.String("stack_trace", err.StackTrace))
		h.logger.Error(err.Message, fields...)
		return
	}
	h.logger.Warn(err.Message, fields...)
}

// sendJSON sends a JSON response
func (h *ErrorHandler) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode error response",
			zap.Error(err),
			zap.Any("data", data),
		)
	}
}

// Middleware returns an HTTP middleware that turns panics into the generic 500 body
func (h *ErrorHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.Handle(w, r, fmt.Errorf("panic: %v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
