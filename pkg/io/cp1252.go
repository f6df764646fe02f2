package io

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrNotCP1252 is returned when a string to be written contains a
// character CP1252 can't represent.
var ErrNotCP1252 = errors.New("character not representable in CP1252")

// undefined reports whether b has no character assigned in CP1252. Such
// bytes are mapped to the C1 control character with the same value, so
// that any byte string survives a decode and encode.
func undefined(b byte) bool {
	switch b {
	case 0x81, 0x8d, 0x8f, 0x90, 0x9d:
		return true
	}
	return false
}

func decodeCP1252(raw []byte) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, b := range raw {
		if undefined(b) {
			sb.WriteRune(rune(b))
			continue
		}
		sb.WriteRune(charmap.Windows1252.DecodeByte(b))
	}
	return sb.String()
}

func encodeCP1252(s string) ([]byte, error) {
	res := make([]byte, 0, len(s))
	for i, r := range s {
		if r < utf8.RuneSelf {
			res = append(res, byte(r))
			continue
		}
		if r <= 0xff && undefined(byte(r)) {
			res = append(res, byte(r))
			continue
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q at %d", ErrNotCP1252, r, i)
		}
		res = append(res, b)
	}
	return res, nil
}
