package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponderStatus(t *testing.T) {
	for _, raw := range []string{"active", "assigned", "offline"} {
		s, err := ParseResponderStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, ResponderStatus(raw), s)
	}

	_, err := ParseResponderStatus("Active")
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestParseEmergencyStatus(t *testing.T) {
	s, err := ParseEmergencyStatus("resolved")
	require.NoError(t, err)
	assert.Equal(t, EmergencyStatusResolved, s)

	_, err = ParseEmergencyStatus("assigned")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestLocationValid(t *testing.T) {
	tests := []struct {
		name string
		loc  Location
		want bool
	}{
		{"johannesburg", Location{-26.1074, 28.0543}, true},
		{"poles and antimeridian", Location{90, -180}, true},
		{"latitude too large", Location{90.1, 0}, false},
		{"longitude too small", Location{0, -180.5}, false},
		{"nan", Location{math.NaN(), 0}, false},
		{"infinite", Location{0, math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.Valid())
		})
	}
}
