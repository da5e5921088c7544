package commands

import (
	"fmt"

	"linknet/resp"
	"linknet/store"
)

const ConnectCommand = "CONNECT"

func RegisterConnectCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     ConnectCommand,
		Validate: validatePairCommand(),
		Execute:  executeConnectCommand(),
		IsWrite:  true,
	})
}

// validatePairCommand checks arity for every command taking two element ids.
// Range and self-loop checks belong to the store.
func validatePairCommand() ValidationHook {
	return func(args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("expected 2 arguments, got %d", len(args))
		}
		return nil
	}
}

func executeConnectCommand() ExecutionHook {
	return func(args []string, store store.Store) string {
		err := store.Connect(args[0], args[1])
		if err != nil {
			return resp.EncodeError(err.Error())
		}
		return resp.EncodeSimpleString("OK")
	}
}
