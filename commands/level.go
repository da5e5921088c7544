package commands

import (
	"linknet/resp"
	"linknet/store"
)

const LevelCommand = "LEVEL"

func RegisterLevelCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     LevelCommand,
		Validate: validatePairCommand(),
		Execute:  executeLevelCommand(),
	})
}

func executeLevelCommand() ExecutionHook {
	return func(args []string, store store.Store) string {
		level, err := store.Level(args[0], args[1])
		if err != nil {
			return resp.EncodeError(err.Error())
		}
		return resp.EncodeInteger(level)
	}
}
