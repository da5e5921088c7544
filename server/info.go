package server

import (
	"fmt"
	"time"

	"github.com/panjf2000/gnet/v2"

	"linknet/resp"
)

const Info = "INFO"

func RegisterInfoCommand(r ServerCommandRegistry) {
	r.Add(&ServerCommandRegistration{
		Name:    Info,
		Execute: executeInfoCommand(),
	})
}

func executeInfoCommand() ExecutionHook {
	return func(inp string, ts *Server, c gnet.Conn) gnet.Action {
		ts.storeLock.Lock()
		size := ts.graphStore.Size()
		edges := ts.graphStore.Edges()
		ts.storeLock.Unlock()

		lines := []string{
			fmt.Sprintf("server_id:%s", ts.id.String()),
			fmt.Sprintf("uptime:%s", time.Since(ts.startedAt).Round(time.Second)),
			fmt.Sprintf("universe_size:%d", size),
			fmt.Sprintf("edges:%d", edges),
		}
		_, errConn := c.Write([]byte(resp.EncodeStringArray(lines)))
		if errConn != nil {
			fmt.Println("Error occurred writing to connection", errConn)
		}
		return gnet.None
	}
}
