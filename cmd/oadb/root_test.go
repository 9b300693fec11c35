package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdStructure(t *testing.T) {
	rootCmd := getRootCmd()
	assert.Equal(t, "oadb", rootCmd.Use)

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{
		"create", "start", "resume", "status", "reset", "test",
	} {
		assert.Contains(t, names, want)
	}
}

func TestStartHasForceFlag(t *testing.T) {
	rootCmd := getRootCmd()
	start, _, err := rootCmd.Find([]string{"start"})
	require.NoError(t, err)
	assert.NotNil(t, start.Flags().Lookup("force"))
}

func TestTestHasLimitFlag(t *testing.T) {
	rootCmd := getRootCmd()
	testCmd, _, err := rootCmd.Find([]string{"test"})
	require.NoError(t, err)
	flag := testCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "1000", flag.DefValue)
}

func TestExitErrorUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := &exitError{code: exitPartial, err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "boom", err.Error())

	var ee *exitError
	require.True(t, errors.As(error(err), &ee))
	assert.Equal(t, exitPartial, ee.code)
}
