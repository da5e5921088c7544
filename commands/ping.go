package commands

import (
	"linknet/resp"
	"linknet/store"
)

const PingCommand = "PING"

func RegisterPingCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     PingCommand,
		Validate: validateNoArgsCommand(),
		Execute:  executePingCommand(),
	})
}

func executePingCommand() ExecutionHook {
	return func(args []string, store store.Store) string {
		return resp.EncodeSimpleString("PONG")
	}
}
