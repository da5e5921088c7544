package resp

import (
	"bytes"
	"fmt"
)

// EncodeSimpleString encodes a RESP simple string
func EncodeSimpleString(s string) string {
	return "+" + s + "\r\n"
}

// EncodeBulkString encodes a RESP bulk string
func EncodeBulkString(s string) string {
	return fmt.Sprintf("$%d\r\n%s\r\n", len(s), s)
}

// EncodeError encodes a RESP error string
func EncodeError(err string) string {
	return "-" + err + "\r\n"
}

// EncodeInteger encodes a RESP integer
func EncodeInteger(i int) string {
	return fmt.Sprintf(":%d\r\n", i)
}

// EncodeBoolean encodes a boolean as a RESP integer, 1 for true and 0 for false
func EncodeBoolean(b bool) string {
	if b {
		return EncodeInteger(1)
	}
	return EncodeInteger(0)
}

// EncodeStringArray encodes an array of strings into RESP array format
func EncodeStringArray(arr []string) string {
	var buffer bytes.Buffer

	buffer.WriteString(fmt.Sprintf("*%d\r\n", len(arr)))
	for _, s := range arr {
		buffer.WriteString(EncodeBulkString(s))
	}
	return buffer.String()
}
