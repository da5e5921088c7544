package commands

import (
	"linknet/resp"
	"linknet/store"
)

const EdgesCommand = "EDGES"

func RegisterEdgesCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     EdgesCommand,
		Validate: validateNoArgsCommand(),
		Execute:  executeEdgesCommand(),
	})
}

func executeEdgesCommand() ExecutionHook {
	return func(args []string, store store.Store) string {
		return resp.EncodeInteger(store.Edges())
	}
}
