package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// readInput reads path, or stdin if path is "-", and decodes it according to
// mode. In auto mode, content that consists only of hex digits and white space
// is treated as hex text.
func readInput(path string, mode string, stdin io.Reader) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	switch mode {
	case "binary":
		return data, nil
	case "hex":
		return decodeHex(path, data)
	default:
		if isHexText(data) {
			return decodeHex(path, data)
		}

		return data, nil
	}
}

func decodeHex(path string, data []byte) ([]byte, error) {
	text := bytes.Join(bytes.Fields(data), nil)
	decoded := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(decoded, text); err != nil {
		return nil, fmt.Errorf("decode hex %s: %w", path, err)
	}

	return decoded, nil
}

func isHexText(data []byte) bool {
	digits := 0
	for _, c := range data {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
			digits++
		case c == ' ', c == '\t', c == '\n', c == '\r':
		default:
			return false
		}
	}

	return digits > 0 && digits%2 == 0
}
