package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "dynaql", cmd.Use)
	assert.Contains(t, cmd.Long, "DYNAQL_")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	subCmd, _, err := cmd.Find([]string{"translate"})
	require.NoError(t, err)
	require.NotNil(t, subCmd)
	assert.Equal(t, "translate", subCmd.Name())
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "", configFlag.DefValue)

	levelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, levelFlag)
	assert.Equal(t, "info", levelFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("log-format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestTranslateCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	translateCmd, _, err := cmd.Find([]string{"translate"})
	require.NoError(t, err)

	tableFlag := translateCmd.Flags().Lookup("table")
	require.NotNil(t, tableFlag)
	assert.Equal(t, "t", tableFlag.Shorthand)
	assert.Equal(t, "", tableFlag.DefValue)

	existenceFlag := translateCmd.Flags().Lookup("existence-checks")
	require.NotNil(t, existenceFlag)
	assert.Equal(t, "false", existenceFlag.DefValue)
}
