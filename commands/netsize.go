package commands

import (
	"fmt"

	"linknet/resp"
	"linknet/store"
)

const NetSizeCommand = "NETSIZE"

func RegisterNetSizeCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     NetSizeCommand,
		Validate: validateNoArgsCommand(),
		Execute:  executeNetSizeCommand(),
	})
}

func validateNoArgsCommand() ValidationHook {
	return func(args []string) error {
		if len(args) != 0 {
			return fmt.Errorf("expected 0 arguments, got %d", len(args))
		}
		return nil
	}
}

func executeNetSizeCommand() ExecutionHook {
	return func(args []string, store store.Store) string {
		return resp.EncodeInteger(store.Size())
	}
}
