package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy9310/GreenNetwork/netenv"
)

func TestNewPolicy_UnknownName(t *testing.T) {
	_, err := newPolicy("does-not-exist", 3, 1)
	assert.Error(t, err)
}

func TestNewPolicy_AllOpen(t *testing.T) {
	policy, err := newPolicy("all-open", 4, 1)
	require.NoError(t, err)

	action := policy(nil, nil)
	assert.Equal(t, netenv.Action{true, true, true, true}, action)
}

func TestNewPolicy_RandomIsSeedReproducible(t *testing.T) {
	policyA, err := newPolicy("random", 16, 42)
	require.NoError(t, err)
	policyB, err := newPolicy("random", 16, 42)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.Equal(t, policyA(nil, nil), policyB(nil, nil), "draw %d", i)
	}
}

func TestNewPolicy_CloseOverloaded(t *testing.T) {
	policy, err := newPolicy("close-overloaded", 3, 1)
	require.NoError(t, err)

	// Link 0: open, ratio 1.5 → close. Link 1: open, ratio 0.4 → keep.
	// Link 2: already closed → stays closed.
	obs := netenv.Observation{1.5, 1, 0.4, 1, 0, 0}
	action := policy(obs, netenv.Action{true, true, false})

	assert.Equal(t, netenv.Action{false, true, false}, action)
}
