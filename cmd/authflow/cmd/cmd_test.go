package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		strengthConfirm = ""
		strengthCmd.Flags().Lookup("confirm").Changed = false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "Authflow CLI v"+version+"\n", out)
}

func TestStrength(t *testing.T) {
	out, err := run(t, "strength", "Passw0rd!", "--confirm", "Passw0rd!")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] At least 8 characters")
	assert.Contains(t, out, "Score: 5/5 (Very strong)")
	assert.Contains(t, out, "Matches: true")
}

func TestStrengthWeak(t *testing.T) {
	out, err := run(t, "strength", "abc")
	require.Error(t, err)
	assert.Contains(t, out, "[ ] One uppercase letter")
	assert.Contains(t, out, "Score: 1/5 (Weak)")
	assert.NotContains(t, out, "Matches:")
}

func TestCode(t *testing.T) {
	out, err := run(t, "code", "1234567")
	require.NoError(t, err)
	assert.Equal(t, "123456 is well formed\n", out)

	_, err = run(t, "code", "12a456")
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	out, err := run(t, "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "validate_identity")
	assert.Contains(t, out, "/validate-email")
	assert.Contains(t, out, "true")
}
