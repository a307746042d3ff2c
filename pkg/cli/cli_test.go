package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	t.Run("should expose the ganttui command", func(t *testing.T) {
		assert.Equal(t, "ganttui", cmd.Use)
		assert.NotEmpty(t, cmd.Short)
		assert.NotNil(t, cmd.RunE)
	})

	t.Run("should wire the config flag with its shorthand", func(t *testing.T) {
		flag := cmd.Flags().Lookup("config")

		require.NotNil(t, flag)
		assert.Equal(t, "c", flag.Shorthand)
		assert.Equal(t, "", flag.DefValue)
	})

	t.Run("should wire the verbose flag defaulting off", func(t *testing.T) {
		flag := cmd.Flags().Lookup("verbose")

		require.NotNil(t, flag)
		assert.Equal(t, "v", flag.Shorthand)
		assert.Equal(t, "false", flag.DefValue)
	})

	t.Run("should wire the empty flag defaulting to the sample tasks", func(t *testing.T) {
		flag := cmd.Flags().Lookup("empty")

		require.NotNil(t, flag)
		assert.Equal(t, "false", flag.DefValue)
	})

	t.Run("should parse combined flags", func(t *testing.T) {
		cmd := NewRootCommand()

		err := cmd.ParseFlags([]string{"--empty", "-v", "-c", "/tmp/ganttui-test.json"})

		require.NoError(t, err)
		empty, _ := cmd.Flags().GetBool("empty")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configPath, _ := cmd.Flags().GetString("config")
		assert.True(t, empty)
		assert.True(t, verbose)
		assert.Equal(t, "/tmp/ganttui-test.json", configPath)
	})
}
