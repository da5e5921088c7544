package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"linknet/server"
	"linknet/store"
)

const DefaultPort = "7997"

func main() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGINT)

	port := os.Getenv("LINKNET_PORT")
	if len(port) == 0 {
		port = DefaultPort
	}
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("invalid port %q: %v", port, err)
	}

	universeSize := store.DefaultUniverseSize
	if size := os.Getenv("LINKNET_SIZE"); len(size) > 0 {
		universeSize, err = strconv.Atoi(size)
		if err != nil {
			log.Fatalf("invalid universe size %q: %v", size, err)
		}
	}

	linkServer, err := server.New(portInt, universeSize)
	if err != nil {
		log.Fatalf("error creating server: %v", err)
	}

	go func() {
		if runErr := linkServer.Run(); runErr != nil {
			log.Fatalf("error running server: %v", runErr)
		}
	}()

	<-sigs
}
