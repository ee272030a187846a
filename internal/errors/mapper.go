// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/provider"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/utils/pagination"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/wizard"
)

// ErrSessionNotFound is returned when a deck or wizard session id is unknown.
var ErrSessionNotFound = errors.New("session not found")

// Map converts repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var verr *wizard.ValidationError
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "record not found")

	case errors.Is(err, ErrSessionNotFound), errors.Is(err, provider.ErrViewerNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Error())

	case errors.Is(err, swipe.ErrDuplicateCandidate),
		errors.Is(err, swipe.ErrUnknownDecision),
		errors.Is(err, wizard.ErrUnknownStep),
		errors.Is(err, pagination.ErrInvalidToken):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, swipe.ErrBusy),
		errors.Is(err, wizard.ErrWrongStep),
		errors.Is(err, wizard.ErrNotCompleted),
		errors.Is(err, wizard.ErrAtFirstStep):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		// fallback → bubble up error message for debugging
		return status.Error(codes.Internal, err.Error())
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// NotFound creates a gRPC NotFound error.
func NotFound(msg string) error {
	return status.Error(codes.NotFound, msg)
}
