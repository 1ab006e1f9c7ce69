package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQuitsOnKey(t *testing.T) {
	rootOpts := testOptions(t, "static")
	_, err := cartCmd(rootOpts, "add", "1")
	require.NoError(t, err)

	cmd := newRunCommand(&RunOptions{
		RootOptions: rootOpts,
		ProgramOptions: []tea.ProgramOption{
			tea.WithInput(strings.NewReader("q")),
			tea.WithOutput(&bytes.Buffer{}),
			tea.WithoutSignalHandler(),
		},
	})

	_, err = execute(cmd)
	require.NoError(t, err)

	out, err := cartCmd(rootOpts, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Laptop Gamer - $1500")
}

func TestRunBadConfig(t *testing.T) {
	rootOpts := testOptions(t, "static")
	rootOpts.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

	out, err := execute(NewRunCommand(rootOpts))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, strings.HasPrefix(out, "Error [E001]: "), out)
}

func TestRunUnknownVariant(t *testing.T) {
	rootOpts := testOptions(t, "web")

	out, err := execute(NewRunCommand(rootOpts))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, `variant "web"`)
}
