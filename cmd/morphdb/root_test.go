package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "morphdb", cmd.Use,
		"Command name should be morphdb")
}

// TestGetRootCmd_Subcommands verifies every catalog operation is
// registered.
func TestGetRootCmd_Subcommands(t *testing.T) {
	cmd := getRootCmd()

	want := []string{
		"create", "migrate", "import", "add", "variety",
		"search", "show", "export", "stats", "reset",
	}
	var got []string
	for _, sub := range cmd.Commands() {
		got = append(got, sub.Name())
	}
	for _, name := range want {
		assert.Contains(t, got, name)
	}
}

// TestGetRootCmd_ShortVersionFlag verifies -V flag works.
func TestGetRootCmd_ShortVersionFlag(t *testing.T) {
	cmd := getRootCmd()
	cmd.Version = "v1.2.3"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"-V"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "v1.2.3",
		"Version output should work with -V flag")
}
