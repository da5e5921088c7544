package commands

import (
	"linknet/resp"
	"linknet/store"
)

const ConnectedCommand = "CONNECTED"

func RegisterConnectedCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     ConnectedCommand,
		Validate: validatePairCommand(),
		Execute:  executeConnectedCommand(),
	})
}

func executeConnectedCommand() ExecutionHook {
	return func(args []string, store store.Store) string {
		connected, err := store.Connected(args[0], args[1])
		if err != nil {
			return resp.EncodeError(err.Error())
		}
		return resp.EncodeBoolean(connected)
	}
}
