package commands

import (
	"fmt"

	"linknet/resp"
	"linknet/store"
)

const NeighborsCommand = "NEIGHBORS"

func RegisterNeighborsCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     NeighborsCommand,
		Validate: validateSingleElementCommand(),
		Execute:  executeNeighborsCommand(),
	})
}

func validateSingleElementCommand() ValidationHook {
	return func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected 1 argument, got %d", len(args))
		}
		return nil
	}
}

func executeNeighborsCommand() ExecutionHook {
	return func(args []string, store store.Store) string {
		neighbors, err := store.Neighbors(args[0])
		if err != nil {
			return resp.EncodeError(err.Error())
		}
		return resp.EncodeStringArray(neighbors)
	}
}
