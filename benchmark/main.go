package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"net"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"linknet/resp"
)

const DefaultAddr = "localhost:7997"

func connect(address string) (net.Conn, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// roundTrip sends one command and reads the single-line reply it produces.
func roundTrip(conn net.Conn, reader *bufio.Reader, command string) (string, error) {
	_, err := conn.Write([]byte(resp.EncodeCommand(command)))
	if err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func main() {
	addr := flag.String("addr", DefaultAddr, "server address")
	size := flag.Int("size", 1000, "universe size")
	edges := flag.Int("edges", 3000, "random links to create")
	clients := flag.Int("clients", 8, "concurrent query clients")
	queries := flag.Int("queries", 10000, "level queries per client")
	flag.Parse()

	setup, err := connect(*addr)
	if err != nil {
		fmt.Println("Error connecting to linknet:", err)
		os.Exit(1)
	}
	defer setup.Close()
	setupReader := bufio.NewReader(setup)

	if _, err = roundTrip(setup, setupReader, fmt.Sprintf("RESET %d", *size)); err != nil {
		fmt.Println("Error resetting universe:", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0
	for created < *edges {
		a := rng.Intn(*size) + 1
		b := rng.Intn(*size) + 1
		if a == b {
			continue
		}
		reply, tripErr := roundTrip(setup, setupReader, fmt.Sprintf("CONNECT %d %d", a, b))
		if tripErr != nil {
			fmt.Println("Error creating link:", tripErr)
			os.Exit(1)
		}
		if strings.HasPrefix(reply, "+") {
			created++
		}
	}

	start := time.Now()
	var g errgroup.Group
	for i := 0; i < *clients; i++ {
		seed := time.Now().UnixNano() + int64(i)
		g.Go(func() error {
			conn, dialErr := connect(*addr)
			if dialErr != nil {
				return dialErr
			}
			defer conn.Close()
			reader := bufio.NewReader(conn)
			local := rand.New(rand.NewSource(seed))
			for q := 0; q < *queries; q++ {
				a := local.Intn(*size) + 1
				b := local.Intn(*size) + 1
				if _, tripErr := roundTrip(conn, reader, fmt.Sprintf("LEVEL %d %d", a, b)); tripErr != nil {
					return tripErr
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		fmt.Println("Benchmark failed:", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	total := *clients * *queries
	fmt.Printf("%d level queries across %d clients in %v (%.0f ops/sec)\n",
		total, *clients, elapsed, float64(total)/elapsed.Seconds())
}
