package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CorrelationHeader carries the request correlation identifier on both the
// request and the response.
const CorrelationHeader = "X-Correlation-Id"

const (
	correlationContextKey = "correlationID"
	subjectContextKey     = "authSubject"
)

// TokenVerifier checks bearer credentials presented at the boundary and
// resolves them to a caller identity.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// CorrelationID propagates the caller's correlation id, minting a fresh
// uuid when the request carries none.
func CorrelationID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id := ctx.Request().Header.Get(CorrelationHeader)
			if id == "" {
				id = uuid.NewString()
			}

			ctx.Set(correlationContextKey, id)
			ctx.Response().Header().Set(CorrelationHeader, id)
			return next(ctx)
		}
	}
}

// BearerAuth guards a route group with bearer-token authentication.
// The verified subject is stored on the request context for handlers.
func BearerAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return errs.NewUnauthenticatedError()
			}

			subject, err := verifier.Verify(token)
			if err != nil {
				return errs.NewUnauthenticatedErrorWithCause(err)
			}

			ctx.Set(subjectContextKey, subject)
			return next(ctx)
		}
	}
}

// NewErrorHandler builds the echo error handler that renders every failure
// as an envelope with a stable code. Cancellation reports 499; errors outside
// the taxonomy answer with a generic 500 and full detail goes to the log only.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status, body := mapError(err)
		if status == http.StatusInternalServerError {
			logger.Error("unhandled request failure",
				"error", err,
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
				"correlationId", ctx.Get(correlationContextKey),
			)
		}

		if writeErr := ctx.JSON(status, Envelope{Error: &body}); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}

func mapError(err error) (int, ErrorBody) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errs.StatusClientClosedRequest, ErrorBody{
			Code:    string(errs.CodeCancelled),
			Message: "Operation Cancelled",
		}
	}

	if code, ok := errs.CodeOf(err); ok {
		return code.HTTPStatus(), ErrorBody{
			Code:    string(code),
			Message: err.Error(),
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, ErrorBody{
			Code:    fmt.Sprintf("AE%d", httpErr.Code),
			Message: fmt.Sprint(httpErr.Message),
		}
	}

	return http.StatusInternalServerError, ErrorBody{
		Code:    string(errs.CodeInternal),
		Message: "Something went wrong, Please try again!",
	}
}
