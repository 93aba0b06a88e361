package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestErrorImplementsErrorInterface(t *testing.T) {
	err := New(KindInvalidRange, "address out of bounds")
	assert.Equal(t, "invalid_range: address out of bounds", err.Error())
}

func TestIsMatchesSentinelByKindIgnoringReason(t *testing.T) {
	err := New(KindLabelCollision, "name 'loop' already used")
	assert.True(t, errors.Is(err, LabelCollision))
	assert.False(t, errors.Is(err, InvalidRange))
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("setting label: %w", New(KindLabelCollision, "clash"))
	assert.True(t, errors.Is(err, LabelCollision))
}

func TestIsFalseAgainstNonErrsError(t *testing.T) {
	err := New(KindInvalidRange, "oops")
	assert.False(t, errors.Is(err, errors.New("plain error")))
}

func TestEachSentinelDistinguishable(t *testing.T) {
	sentinels := []*Error{
		InvalidRange, SplitSizeInvalid, LabelNameInvalid, LabelCollision,
		UnknownAddress, NotApplicable, SerializationError,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b))
		}
	}
}
