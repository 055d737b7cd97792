package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// setupConfig points the config manager at a fresh directory for the test
func setupConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "qrecc", "config.json")
	t.Setenv("QRECC_CONFIG", path)
	color.NoColor = true
	return path
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand("test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCommand("test")

	for _, name := range []string{"encode", "check", "generator", "profile", "config"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"verbose", "json", "no-color"} {
		require.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}
