package commands

func RegisterCommands(r CommandRegistry) {
	RegisterPingCommand(r)
	RegisterConnectCommand(r)
	RegisterDisconnectCommand(r)
	RegisterConnectedCommand(r)
	RegisterLevelCommand(r)
	RegisterNeighborsCommand(r)
	RegisterDegreeCommand(r)
	RegisterNetSizeCommand(r)
	RegisterEdgesCommand(r)
	RegisterResetCommand(r)
}
