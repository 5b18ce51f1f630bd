package table

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// decodeToUTF8 detects the encoding of uploaded extract bytes and returns
// UTF-8. County exports come out of legacy Windows tooling, so UTF-16 and
// Latin-1 payloads show up in practice.
func decodeToUTF8(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}

	if bytes.HasPrefix(data, bomUTF8) {
		return data[3:], nil
	}

	// UTF-16 BOMs (FF FE / FE FF); ExpectBOM consumes the marker.
	if len(data) >= 2 && (data[0] == 0xFF && data[1] == 0xFE || data[0] == 0xFE && data[1] == 0xFF) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
		return dec.Bytes(data)
	}

	if utf8.Valid(data) {
		return data, nil
	}

	// Latin-1 never fails: every byte maps directly to a code point.
	return charmap.ISO8859_1.NewDecoder().Bytes(data)
}
