package commands

import (
	"linknet/resp"
	"linknet/store"
)

const DegreeCommand = "DEGREE"

func RegisterDegreeCommand(r CommandRegistry) {
	r.Add(&CommandRegistration{
		Name:     DegreeCommand,
		Validate: validateSingleElementCommand(),
		Execute:  executeDegreeCommand(),
	})
}

func executeDegreeCommand() ExecutionHook {
	return func(args []string, store store.Store) string {
		degree, err := store.Degree(args[0])
		if err != nil {
			return resp.EncodeError(err.Error())
		}
		return resp.EncodeInteger(degree)
	}
}
