package resp

import (
	"fmt"
	"strconv"
	"strings"
)

// Decode parses a RESP command string and returns the command and arguments
func Decode(respInput string) (string, []string, error) {
	lines := strings.Split(respInput, "\r\n")
	if len(lines) < 1 || len(lines[0]) == 0 || lines[0][0] != '*' {
		return "", nil, fmt.Errorf("invalid RESP input: missing array prefix '*'")
	}

	arrayLength, err := strconv.Atoi(lines[0][1:])
	if err != nil {
		return "", nil, fmt.Errorf("invalid array length: %v", err)
	}
	if arrayLength < 1 {
		return "", nil, fmt.Errorf("invalid command: array length must be at least 1")
	}

	args := make([]string, 0, arrayLength)
	i := 1
	for len(args) < arrayLength && i < len(lines) {
		if len(lines[i]) > 0 && lines[i][0] == '$' {
			bulkLength, err := strconv.Atoi(lines[i][1:])
			if err != nil || bulkLength < 0 {
				return "", nil, fmt.Errorf("invalid bulk string length: %v", err)
			}
			if i+1 >= len(lines) || len(lines[i+1]) != bulkLength {
				return "", nil, fmt.Errorf("bulk string length mismatch")
			}
			args = append(args, lines[i+1])
			i += 2
		} else {
			return "", nil, fmt.Errorf("expected bulk string prefix '$', found: %s", lines[i])
		}
	}

	if len(args) != arrayLength {
		return "", nil, fmt.Errorf("mismatch between declared and parsed array length")
	}

	// first element is the command name, the rest are its arguments
	return args[0], args[1:], nil
}

// EncodeCommand frames a space-separated command line as a RESP array of
// bulk strings, the shape Decode expects on the wire.
func EncodeCommand(line string) string {
	fields := strings.Fields(line)
	return EncodeStringArray(fields)
}
