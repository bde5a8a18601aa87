package netenv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_DumpsPerLinkState(t *testing.T) {
	env := newTriangleEnv(t, 15)
	_, err := env.Step(Action{true, true, false})
	require.NoError(t, err)

	var buf strings.Builder
	env.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "Current step: 1")
	assert.Contains(t, out, "Edge 0-1 | Open=1 | Usage=15.00 / 10")
	assert.Contains(t, out, "Edge 1-2 | Open=1 | Usage=15.00 / 10")
	assert.Contains(t, out, "Edge 0-2 | Open=0 | Usage=0.00 / 10")
}

func TestRender_SafeBeforeReset(t *testing.T) {
	env, err := New(seededConfig(1))
	require.NoError(t, err)

	var buf strings.Builder
	env.Render(&buf)

	assert.Contains(t, buf.String(), "Current step: 0")
	assert.Contains(t, buf.String(), "Open=0")
}
