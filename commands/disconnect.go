package commands

import (
	"linknet/resp"
	"linknet/store"
)

const DisconnectCommand = "DISCONNECT"

func RegisterDisconnectCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     DisconnectCommand,
		Validate: validatePairCommand(),
		Execute:  executeDisconnectCommand(),
		IsWrite:  true,
	})
}

func executeDisconnectCommand() ExecutionHook {
	return func(args []string, store store.Store) string {
		err := store.Disconnect(args[0], args[1])
		if err != nil {
			return resp.EncodeError(err.Error())
		}
		return resp.EncodeSimpleString("OK")
	}
}
