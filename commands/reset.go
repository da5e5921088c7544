package commands

import (
	"fmt"
	"strconv"

	"linknet/resp"
	"linknet/store"
)

const ResetCommand = "RESET"

// DefaultResetSize is the universe size used when RESET is issued bare.
const DefaultResetSize = store.DefaultUniverseSize

func RegisterResetCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     ResetCommand,
		Validate: validateResetCommand(),
		Execute:  executeResetCommand(),
		IsWrite:  true,
	})
}

func validateResetCommand() ValidationHook {
	return func(args []string) error {
		if len(args) > 1 {
			return fmt.Errorf("expected at most 1 argument, got %d", len(args))
		}
		return nil
	}
}

func executeResetCommand() ExecutionHook {
	return func(args []string, store store.Store) string {
		size := strconv.Itoa(DefaultResetSize)
		if len(args) == 1 {
			size = args[0]
		}
		err := store.Reset(size)
		if err != nil {
			return resp.EncodeError(err.Error())
		}
		return resp.EncodeSimpleString("OK")
	}
}
