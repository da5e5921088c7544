package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/c-bata/go-prompt"

	"linknet/resp"
)

const DefaultPort = "7997"

// terminator ends each phase of the guided session, case-insensitive
const SessionTerminator = "done"

const DefaultUniverseSize = 6

// Connect to the linknet server
func connectToServer(address string) (net.Conn, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Send a command line to the server in RESP format
func sendCommand(conn net.Conn, command string) error {
	_, err := conn.Write([]byte(resp.EncodeCommand(command)))
	return err
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readReply parses a single RESP reply from the server. The second return
// value reports whether the reply was a server-side error.
func readReply(reader *bufio.Reader) (string, bool, error) {
	line, err := readLine(reader)
	if err != nil {
		return "", false, err
	}
	if len(line) == 0 {
		return "", false, fmt.Errorf("empty reply")
	}
	switch line[0] {
	case '+':
		return line[1:], false, nil
	case ':':
		return line[1:], false, nil
	case '-':
		return line[1:], true, nil
	case '$':
		length, convErr := strconv.Atoi(line[1:])
		if convErr != nil {
			return "", false, convErr
		}
		if length < 0 {
			return "(nil)", false, nil
		}
		payload, payloadErr := readLine(reader)
		if payloadErr != nil {
			return "", false, payloadErr
		}
		return payload, false, nil
	case '*':
		count, convErr := strconv.Atoi(line[1:])
		if convErr != nil {
			return "", false, convErr
		}
		items := make([]string, 0, count)
		for i := 0; i < count; i++ {
			item, _, itemErr := readReply(reader)
			if itemErr != nil {
				return "", false, itemErr
			}
			items = append(items, item)
		}
		if len(items) == 0 {
			return "(empty)", false, nil
		}
		return strings.Join(items, " "), false, nil
	default:
		return "", false, fmt.Errorf("unexpected reply: %s", line)
	}
}

func roundTrip(conn net.Conn, reader *bufio.Reader, command string) (string, bool, error) {
	if err := sendCommand(conn, command); err != nil {
		return "", false, err
	}
	return readReply(reader)
}

func completer(d prompt.Document) []prompt.Suggest {
	input := d.TextBeforeCursor()
	firstWord := strings.Split(input, " ")[0]
	if firstWord == "" {
		return []prompt.Suggest{}
	}
	s := []prompt.Suggest{
		{Text: "CONNECT", Description: "CONNECT a b - Link two elements"},
		{Text: "CONNECTED", Description: "CONNECTED a b - Return 1 if a path exists between a and b, 0 otherwise"},
		{Text: "DEGREE", Description: "DEGREE a - Number of direct neighbors of a"},
		{Text: "DISCONNECT", Description: "DISCONNECT a b - Remove the link between two elements"},
		{Text: "EDGES", Description: "EDGES - Number of links in the graph"},
		{Text: "INFO", Description: "INFO - Server id, uptime and graph counters"},
		{Text: "LEVEL", Description: "LEVEL a b - Links on a shortest path between a and b, 0 when equal or unreachable"},
		{Text: "NEIGHBORS", Description: "NEIGHBORS a - Direct neighbors of a in ascending order"},
		{Text: "NETSIZE", Description: "NETSIZE - Number of elements in the universe"},
		{Text: "PING", Description: "PING - Replies with a PONG"},
		{Text: "RESET", Description: "RESET [size] - Start over with a fresh universe, default size 6"},
	}
	return prompt.FilterHasPrefix(s, firstWord, true)
}

func main() {
	portFlag := flag.String("port", DefaultPort, "Port to connect on")
	sessionFlag := flag.Bool("session", false, "Run the guided connect/disconnect/query session")
	flag.Parse()

	host := os.Getenv("LINKNET_HOST")
	port := os.Getenv("LINKNET_PORT")
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = DefaultPort
	}

	if portFlag != nil && *portFlag != "" {
		port = *portFlag
	}

	conn, err := connectToServer(fmt.Sprintf("%s:%s", host, port))
	if err != nil {
		fmt.Println("Error connecting to linknet:", err)
		os.Exit(1)
	}
	defer conn.Close()

	if *sessionFlag {
		runSession(conn)
		return
	}

	reader := bufio.NewReader(conn)

	fmt.Println("Connected to linknet. Type commands and press Enter.")
	fmt.Println("Please use `Ctrl-D` to exit this program.")
	defer fmt.Println("Bye!")
	p := prompt.New(
		func(cmd string) {
			if strings.TrimSpace(cmd) == "" {
				return
			}
			startTime := time.Now()
			reply, serverErr, rerr := roundTrip(conn, reader, cmd)
			if rerr != nil {
				fmt.Println("Error talking to server:", rerr)
				return
			}
			if serverErr {
				fmt.Println("(error)", reply)
			} else {
				fmt.Println(reply)
			}
			elapsedTime := time.Since(startTime)
			fmt.Printf("Time taken: %v\n", elapsedTime)
		},
		completer,
		prompt.OptionPrefix(">>> "),
		prompt.OptionPrefixTextColor(prompt.Yellow),
		prompt.OptionSuggestionTextColor(prompt.Yellow),
		prompt.OptionSuggestionBGColor(prompt.Black),
		prompt.OptionDescriptionBGColor(prompt.Black),
		prompt.OptionDescriptionTextColor(prompt.Yellow),
		prompt.OptionScrollbarBGColor(prompt.Black),
	)
	p.Run()
}

// runSession drives the three-phase interactive flow: connect pairs, then
// disconnect pairs, then query pairs. Each phase ends with the terminator
// token. Errors are reported per command and the loop continues.
func runSession(conn net.Conn) {
	stdin := bufio.NewReader(os.Stdin)
	reader := bufio.NewReader(conn)

	size := readUniverseSize(stdin)
	if _, serverErr, err := roundTrip(conn, reader, fmt.Sprintf("RESET %d", size)); err != nil || serverErr {
		fmt.Println("Error resetting universe")
		return
	}
	fmt.Printf("Universe of %d elements ready.\n", size)

	connected := runPairPhase(conn, reader, stdin, "Connect", func(a, b string) string {
		return fmt.Sprintf("CONNECT %s %s", a, b)
	})

	runPairPhase(conn, reader, stdin, "Disconnect", func(a, b string) string {
		return fmt.Sprintf("DISCONNECT %s %s", a, b)
	})

	runQueryPhase(conn, reader, stdin)

	fmt.Printf("Connections made: %d\n", connected)
}

// readUniverseSize reads a positive integer, defaulting on empty input.
func readUniverseSize(stdin *bufio.Reader) int {
	for {
		fmt.Printf("Universe size [%d]: ", DefaultUniverseSize)
		line, err := readLine(stdin)
		if err != nil {
			return DefaultUniverseSize
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return DefaultUniverseSize
		}
		size, convErr := strconv.Atoi(line)
		if convErr != nil || size <= 0 {
			fmt.Println("Please enter a positive integer.")
			continue
		}
		return size
	}
}

func readPair(stdin *bufio.Reader) (string, string, bool, error) {
	line, err := readLine(stdin)
	if err != nil {
		return "", "", true, nil
	}
	if strings.EqualFold(strings.TrimSpace(line), SessionTerminator) {
		return "", "", true, nil
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", false, fmt.Errorf("expected two elements, got %q", line)
	}
	return fields[0], fields[1], false, nil
}

// runPairPhase loops over "a b" pairs until the terminator, issuing one
// command per pair. Returns how many commands succeeded.
func runPairPhase(conn net.Conn, reader *bufio.Reader, stdin *bufio.Reader, label string, build func(a, b string) string) int {
	fmt.Printf("%s phase. Enter pairs as 'a b', finish with '%s'.\n", label, SessionTerminator)
	succeeded := 0
	for {
		fmt.Printf("%s> ", strings.ToLower(label))
		a, b, done, err := readPair(stdin)
		if done {
			return succeeded
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		reply, serverErr, rerr := roundTrip(conn, reader, build(a, b))
		if rerr != nil {
			fmt.Println("Error talking to server:", rerr)
			continue
		}
		if serverErr {
			fmt.Println("(error)", reply)
			continue
		}
		fmt.Println(reply)
		succeeded++
	}
}

// runQueryPhase answers reachability and level for each pair.
func runQueryPhase(conn net.Conn, reader *bufio.Reader, stdin *bufio.Reader) {
	fmt.Printf("Query phase. Enter pairs as 'a b', finish with '%s'.\n", SessionTerminator)
	for {
		fmt.Print("query> ")
		a, b, done, err := readPair(stdin)
		if done {
			return
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		connectedReply, serverErr, rerr := roundTrip(conn, reader, fmt.Sprintf("CONNECTED %s %s", a, b))
		if rerr != nil {
			fmt.Println("Error talking to server:", rerr)
			continue
		}
		if serverErr {
			fmt.Println("(error)", connectedReply)
			continue
		}
		levelReply, serverErr, rerr := roundTrip(conn, reader, fmt.Sprintf("LEVEL %s %s", a, b))
		if rerr != nil {
			fmt.Println("Error talking to server:", rerr)
			continue
		}
		if serverErr {
			fmt.Println("(error)", levelReply)
			continue
		}
		if connectedReply == "1" {
			fmt.Printf("%s and %s are connected, level %s\n", a, b, levelReply)
		} else {
			fmt.Printf("%s and %s are not connected\n", a, b)
		}
	}
}
