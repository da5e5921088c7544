package server

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/gnet/v2"

	"linknet/commands"
	"linknet/resp"
	"linknet/store"
)

type Server struct {
	Port int

	commandRegistry       commands.CommandRegistry
	serverCommandRegistry ServerCommandRegistry
	graphStore            store.Store

	// held for the whole of every operation: BFS reads need a consistent
	// snapshot of adjacency and connect/disconnect must apply to both
	// endpoints atomically
	storeLock *sync.Mutex

	id        uuid.UUID
	startedAt time.Time

	*gnet.BuiltinEventEngine
}

func New(port, universeSize int) (*Server, error) {
	commandRegistry := commands.NewRegistry()
	serverCommandRegistry := NewRegistry()
	commands.RegisterCommands(commandRegistry)
	RegisterCommands(serverCommandRegistry)

	graphStore, err := store.NewGraphStore(universeSize)
	if err != nil {
		return nil, err
	}

	return &Server{
		Port:                  port,
		commandRegistry:       commandRegistry,
		serverCommandRegistry: serverCommandRegistry,
		graphStore:            graphStore,
		storeLock:             &sync.Mutex{},
		id:                    uuid.New(),
	}, nil
}

// Run blocks serving connections until the engine is shut down.
func (ts *Server) Run() error {
	ts.startedAt = time.Now()
	// single event loop, the graph does not support MVCC
	return gnet.Run(ts, fmt.Sprintf("tcp://:%d", ts.Port), gnet.WithMulticore(false))
}

func (ts *Server) OnBoot(_ gnet.Engine) gnet.Action {
	fmt.Println("Server", ts.id.String(), "started on port", ts.Port)
	return gnet.None
}

func (ts *Server) isServerCommand(command string) bool {
	_, err := ts.serverCommandRegistry.Retrieve(strings.ToUpper(command))
	return err == nil
}

func (ts *Server) executeServerCommand(command, inp string, c gnet.Conn) gnet.Action {
	serverCommandRegistration, err := ts.serverCommandRegistry.Retrieve(command)
	if err != nil {
		ts.RespondErr(c, err)
		return gnet.None
	}
	return serverCommandRegistration.Execute(inp, ts, c)
}

func (ts *Server) OnTraffic(c gnet.Conn) gnet.Action {
	data, _ := c.Next(-1)
	inp := string(data)
	if inp == "" {
		ts.RespondErr(c, fmt.Errorf("empty command"))
		return gnet.None
	}

	command, _, err := parseCommand(inp)
	if err != nil {
		ts.RespondErr(c, err)
		return gnet.None
	}

	if ts.isServerCommand(command) {
		return ts.executeServerCommand(command, inp, c)
	}

	return ts.executeCommand(inp, c)
}

func (ts *Server) executeCommand(inp string, c gnet.Conn) gnet.Action {
	command, args, err := parseCommand(inp)
	if err != nil {
		ts.RespondErr(c, err)
		return gnet.None
	}
	commandReg, err := ts.commandRegistry.Retrieve(strings.ToUpper(command))
	if err != nil {
		ts.RespondErr(c, err)
		return gnet.None
	}
	if err = commandReg.Validate(args); err != nil {
		ts.RespondErr(c, err)
		return gnet.None
	}

	ts.storeLock.Lock()
	res := commandReg.Execute(args, ts.graphStore)
	ts.storeLock.Unlock()

	_, errConn := c.Write([]byte(res))
	if errConn != nil {
		fmt.Println("Error occurred writing to connection", errConn)
	}
	return gnet.None
}

func (ts *Server) RespondErr(c gnet.Conn, err error) {
	_, errConn := c.Write([]byte(resp.EncodeError(err.Error())))
	if errConn != nil {
		fmt.Println("Error occurred writing to connection", errConn)
	}
}

func (ts *Server) OnClose(_ gnet.Conn, _ error) gnet.Action {
	return gnet.None
}
