package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigCmd_PrintsYAML(t *testing.T) {
	cmd, out := newTestRootCmd(t, newConfigCmd())
	cmd.SetArgs([]string{"config", logFileArg(t)})

	require.NoError(t, cmd.Execute())

	var settings map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &settings))

	assert.Contains(t, settings, "editor")
	assert.Contains(t, settings, "version")

	list, ok := settings["list"].(map[string]any)
	require.True(t, ok, "list section present")
	assert.Contains(t, list, "parallel")

	session, ok := settings["session"].(map[string]any)
	require.True(t, ok, "session section present")
	assert.Contains(t, session, "keybinding")
}
