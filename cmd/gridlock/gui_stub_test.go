//go:build !ebiten

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGUIWithoutTag(t *testing.T) {
	_, err := execute(t, "gui")
	require.ErrorIs(t, err, errNoGUI)
}
