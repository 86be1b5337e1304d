package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ClosedDoor(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(context.Background(), []string{"-scenario", "testdata/closed_door.yaml"}, &out, &errOut)
	require.NoError(t, err, errOut.String())

	assert.Equal(t, "scenario: closed door\n"+
		"origin: (2,2) depth: 20 visible: 35\n"+
		"#######\n"+
		"#·····#\n"+
		"#·@···+?\n"+
		"#·····#\n"+
		"#######\n", out.String())
}

func TestRun_OpenDoor(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(context.Background(), []string{"-scenario", "testdata/open_door.yaml", "-hidden", "x"}, &out, &errOut)
	require.NoError(t, err, errOut.String())

	assert.Contains(t, out.String(), "#·@···-N\n")
	assert.Contains(t, out.String(), "seen: guard at (7,2)\n")
	assert.NotContains(t, out.String(), "seen: @-")
}

func TestRun_OriginOverride(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(context.Background(), []string{
		"-scenario", "testdata/open_door.yaml",
		"-x", "7", "-y", "2",
		"-depth", "-1",
		"-log-level", "debug", "-log-json",
	}, &out, &errOut)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "origin: (7,2) depth: unbounded")
	assert.Contains(t, out.String(), "seen: @-")
	assert.Contains(t, errOut.String(), `"msg":"computing field of view"`)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing scenario", nil},
		{"unknown file", []string{"-scenario", "testdata/nope.yaml"}},
		{"bad level", []string{"-scenario", "testdata/open_door.yaml", "-log-level", "loud"}},
		{"bad hidden", []string{"-scenario", "testdata/open_door.yaml", "-hidden", "ab"}},
		{"bad flag", []string{"-bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			assert.Error(t, run(context.Background(), tt.args, &out, &errOut))
		})
	}
}
