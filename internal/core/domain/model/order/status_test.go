package order_test

import (
	"fmt"
	"testing"

	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "PENDING"},
		{order.Confirmed, "CONFIRMED"},
		{order.Preparing, "PREPARING"},
		{order.Ready, "READY"},
		{order.Delivering, "DELIVERING"},
		{order.Delivered, "DELIVERED"},
		{order.Cancelled, "CANCELLED"},
		{order.Unknown, "UNKNOWN"},
		{order.Status(99), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses every wire name", func(t *testing.T) {
		for _, name := range []string{
			"PENDING", "CONFIRMED", "PREPARING", "READY", "DELIVERING", "DELIVERED", "CANCELLED",
		} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, name := range []string{"", "pending", "SHIPPED", "UNKNOWN"} {
			_, err := order.StatusFromString(name)
			require.Error(t, err, "expected %q to be rejected", name)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Ready,
			order.Delivering, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid statuses fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(8)} {
			err := s.Validate()
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	for _, s := range []order.Status{
		order.Pending, order.Confirmed, order.Preparing, order.Ready, order.Delivering,
	} {
		assert.False(t, s.IsTerminal(), "%s must not be terminal", s)
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("allows the next step", func(t *testing.T) {
		steps := []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Ready, order.Delivering, order.Delivered,
		}

		for i := 0; i < len(steps)-1; i++ {
			next, err := steps[i].TransitionTo(steps[i+1])
			require.NoError(t, err, "%s -> %s", steps[i], steps[i+1])
			assert.Equal(t, steps[i+1], next)
		}
	})

	t.Run("allows skipping ahead", func(t *testing.T) {
		next, err := order.Pending.TransitionTo(order.Ready)
		require.NoError(t, err)
		assert.Equal(t, order.Ready, next)

		next, err = order.Confirmed.TransitionTo(order.Delivered)
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("allows cancelling any non-terminal order", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Ready, order.Delivering,
		} {
			next, err := s.TransitionTo(order.Cancelled)
			require.NoError(t, err, "%s -> CANCELLED", s)
			assert.Equal(t, order.Cancelled, next)
		}
	})

	t.Run("rejects backward and self transitions", func(t *testing.T) {
		testCases := []struct{ from, to order.Status }{
			{order.Confirmed, order.Pending},
			{order.Delivering, order.Preparing},
			{order.Ready, order.Ready},
			{order.Preparing, order.Confirmed},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				_, err := tc.from.TransitionTo(tc.to)
				require.ErrorIs(t, err, order.ErrInvalidTransition)

				var transitionErr *order.InvalidTransitionError
				require.ErrorAs(t, err, &transitionErr)
				assert.Equal(t, tc.from, transitionErr.From)
				assert.Equal(t, tc.to, transitionErr.To)
			})
		}
	})

	t.Run("rejects any move out of a terminal state", func(t *testing.T) {
		targets := []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.Ready, order.Delivering, order.Delivered, order.Cancelled,
		}

		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			for _, target := range targets {
				if terminal == order.Delivered && target == order.Cancelled {
					// Cancelled is numerically after Delivered but still forbidden.
					_, err := terminal.TransitionTo(target)
					require.ErrorIs(t, err, order.ErrInvalidTransition)
					continue
				}
				_, err := terminal.TransitionTo(target)
				require.ErrorIs(t, err, order.ErrInvalidTransition,
					"%s -> %s must be rejected", terminal, target)
			}
		}
	})

	t.Run("rejects invalid endpoints", func(t *testing.T) {
		_, err := order.Unknown.TransitionTo(order.Confirmed)
		require.Error(t, err)

		_, err = order.Pending.TransitionTo(order.Unknown)
		require.Error(t, err)
	})
}

func TestInvalidTransitionError_Message(t *testing.T) {
	err := order.NewInvalidTransitionError(order.Delivered, order.Preparing)

	assert.Equal(t, "invalid status transition: DELIVERED -> PREPARING", err.Error())
	assert.Equal(t, order.ErrInvalidTransition, err.Unwrap())
}
