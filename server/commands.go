package server

func RegisterCommands(r ServerCommandRegistry) {
	RegisterInfoCommand(r)
}
