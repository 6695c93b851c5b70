package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	t.Run("valid manual credentials are submitted", func(t *testing.T) {
		out, err := run(t, "validate", "--variant", "manual", "--email", "a@b.com", "--password", "abcd")
		require.NoError(t, err)
		assert.Equal(t, "submitted: {Email:a@b.com Password:abcd}\n", out)
	})

	t.Run("manual errors are listed", func(t *testing.T) {
		out, err := run(t, "validate", "--variant", "manual", "--email", "bad-email", "--password", "abc")
		assert.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, "email: Invalid Email\npassword: Password too short\n")
	})

	t.Run("schema uses its own messages", func(t *testing.T) {
		out, err := run(t, "validate", "--variant", "schema", "--email", "bad-email", "--password", "abc")
		assert.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, "email: email must be a valid email\n")
		assert.Contains(t, out, "password: Password is too short - should be 4 chars minimum\n")
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := run(t, "validate", "--variant", "magic")
		assert.ErrorContains(t, err, `unknown variant "magic"`)
	})

	t.Run("schema file override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "signin.yaml")
		doc := "fields:\n  - name: email\n    rules:\n      - rule: required\n        message: Who are you?\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		out, err := run(t, "validate", "--variant", "schema", "--schema", path)
		assert.ErrorIs(t, err, errInvalid)
		assert.Contains(t, out, "email: Who are you?\n")
	})
}

func TestSchemaExport(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		out, err := run(t, "schema", "export")
		require.NoError(t, err)
		assert.Contains(t, out, "name: email")
		assert.Contains(t, out, "Password is too short - should be 4 chars minimum")
	})

	t.Run("file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		var out bytes.Buffer
		cmd := newSchemaExportCmd(fs)
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"--out", "schemas/signin.yaml"})
		require.NoError(t, cmd.Execute())

		data, err := afero.ReadFile(fs, "schemas/signin.yaml")
		require.NoError(t, err)
		assert.Contains(t, string(data), "rule: min")
		assert.Contains(t, out.String(), "Wrote schema to schemas/signin.yaml")
	})
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "signin v"+version+"\n", out)
}
