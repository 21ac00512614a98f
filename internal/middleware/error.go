package middleware

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/url"

	"grammologue/internal/domain"
	"grammologue/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// ErrorHandler is a centralized error handling middleware
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := logger.Get().With(zap.String("request_id", RequestID(c)))

		// Handle validation errors
		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			logger.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			})
		}

		// Handle domain errors
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			logger.Error("Domain error occurred",
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", statusCode),
				zap.Error(domainErr.Err),
			)

			response := ErrorResponse{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
				Status:  statusCode,
			}
			if len(domainErr.Context) > 0 {
				response.Details = domainErr.Context
			}

			return c.Status(statusCode).JSON(response)
		}

		// Handle inference service error statuses
		var upstreamErr *domain.UpstreamError
		if errors.As(err, &upstreamErr) {
			logger.Error("Inference service error",
				zap.String("operation", upstreamErr.Operation),
				zap.Int("upstream_status", upstreamErr.StatusCode),
			)

			response := ErrorResponse{
				Code:    string(domain.CodeUpstream),
				Message: upstreamErr.Detail(),
				Status:  mapUpstreamStatus(upstreamErr.StatusCode),
				Details: map[string]interface{}{"upstream_status": upstreamErr.StatusCode},
			}
			var body interface{}
			if json.Unmarshal(upstreamErr.Body, &body) == nil {
				response.Details["upstream_body"] = body
			}
			return c.Status(response.Status).JSON(response)
		}

		// Handle fiber errors
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			logger.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		// Backend unreachable
		if isTransportError(err) {
			logger.Error("Inference service unreachable",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
				Code:    string(domain.CodeUpstream),
				Message: err.Error(),
				Status:  http.StatusBadGateway,
			})
		}

		logger.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}

// isTransportError reports whether err came from the HTTP round trip itself.
func isTransportError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeMissingField, domain.CodeInvalidFormat:
		return http.StatusBadRequest
	case domain.CodeInvalidResponse, domain.CodeServerReported, domain.CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// mapUpstreamStatus keeps client errors (the request was rejected as sent) and
// reports every other failure as a bad gateway.
func mapUpstreamStatus(status int) int {
	if status >= 400 && status < 500 {
		return status
	}
	return http.StatusBadGateway
}
