package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	svcErr "github.com/rishi048229/Shubh-vivah-app-sub002/internal/errors"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/provider"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/utils/pagination"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/wizard"
)

func TestMap(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"record", gorm.ErrRecordNotFound, codes.NotFound},
		{"session", fmt.Errorf("deck %q: %w", "x", svcErr.ErrSessionNotFound), codes.NotFound},
		{"viewer", fmt.Errorf("%w: 9", provider.ErrViewerNotFound), codes.NotFound},
		{"validation", &wizard.ValidationError{Step: wizard.StepBasic, Fields: map[string]string{"phone": "bad"}}, codes.InvalidArgument},
		{"duplicate", &swipe.DuplicateError{IDs: []string{"1"}}, codes.InvalidArgument},
		{"token", pagination.ErrInvalidToken, codes.InvalidArgument},
		{"busy", swipe.ErrBusy, codes.FailedPrecondition},
		{"wrong step", wizard.ErrWrongStep, codes.FailedPrecondition},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
		{"other", fmt.Errorf("boom"), codes.Internal},
		{"status passthrough", status.Error(codes.Unavailable, "down"), codes.Unavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, status.Code(svcErr.Map(tc.err)))
		})
	}
	assert.NoError(t, svcErr.Map(nil))
}
