package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCustomersCommand(t *testing.T) {
	cmd := NewCustomersCommand()
	assert.Equal(t, "customers", cmd.Use)
	assert.Equal(t, []string{"customer"}, cmd.Aliases)
	assert.Equal(t, "Manage customers", cmd.Short)

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 5)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "search")
	assert.Contains(t, commandNames, "count")
	assert.Contains(t, commandNames, "delete")
}

func TestCustomersListCommand(t *testing.T) {
	cmd := newCustomersListCommand()
	assert.Equal(t, "list", cmd.Use)
	assert.Equal(t, "List customers", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("filter"))
	assert.NotNil(t, cmd.Flags().Lookup("all"))
	assert.NotNil(t, cmd.Flags().Lookup("since-id"))
}

func TestCustomersGetCommand(t *testing.T) {
	cmd := newCustomersGetCommand()
	assert.Equal(t, "get CUSTOMER_ID", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)
}
