package io

import (
	"bytes"
	"encoding/binary"
	"io"
)

// BufBinReader is a big-endian reader over a byte slice with a sticky
// error: once Err is set every subsequent read is a no-op returning zero
// values. Pos is the offset of the next unread byte.
type BufBinReader struct {
	Data []byte
	Pos  int
	Err  error
}

// NewBinReaderFromBuf makes a BufBinReader from byte buffer.
func NewBinReaderFromBuf(b []byte) *BufBinReader {
	return &BufBinReader{
		Data: b,
	}
}

// Len returns the number of unread bytes.
func (r *BufBinReader) Len() int {
	if r.Pos >= len(r.Data) {
		return 0
	}
	return len(r.Data) - r.Pos
}

// ReadU32BE reads a big-endian uint32.
func (r *BufBinReader) ReadU32BE() uint32 {
	if r.Err == nil {
		if pos := r.Pos; pos+4 <= len(r.Data) {
			r.Pos += 4
			return binary.BigEndian.Uint32(r.Data[pos:])
		}
		r.fail()
	}
	return 0
}

// ReadI32BE reads a big-endian int32.
func (r *BufBinReader) ReadI32BE() int32 {
	return int32(r.ReadU32BE())
}

// ReadU16BE reads a big-endian uint16.
func (r *BufBinReader) ReadU16BE() uint16 {
	if r.Err == nil {
		if pos := r.Pos; pos+2 <= len(r.Data) {
			r.Pos += 2
			return binary.BigEndian.Uint16(r.Data[pos:])
		}
		r.fail()
	}
	return 0
}

// ReadI16BE reads a big-endian int16.
func (r *BufBinReader) ReadI16BE() int16 {
	return int16(r.ReadU16BE())
}

// ReadB reads a single byte.
func (r *BufBinReader) ReadB() byte {
	if r.Err == nil {
		if pos := r.Pos; pos < len(r.Data) {
			r.Pos++
			return r.Data[pos]
		}
		r.Err = io.EOF
	}
	return 0
}

// ReadBytes fills the given slice.
func (r *BufBinReader) ReadBytes(b []byte) {
	if r.Err != nil {
		return
	}
	if r.Len() < len(b) {
		r.fail()
		return
	}
	r.Pos += copy(b, r.Data[r.Pos:])
}

// ReadCString reads a NUL-terminated CP1252 string, the terminator is
// consumed but not returned. A missing terminator is an
// io.ErrUnexpectedEOF error.
func (r *BufBinReader) ReadCString() string {
	if r.Err != nil {
		return ""
	}
	if r.Pos >= len(r.Data) {
		r.Err = io.EOF
		return ""
	}
	n := bytes.IndexByte(r.Data[r.Pos:], 0)
	if n < 0 {
		r.Err = io.ErrUnexpectedEOF
		return ""
	}
	raw := r.Data[r.Pos : r.Pos+n]
	r.Pos += n + 1
	return decodeCP1252(raw)
}

// Error returns the first error encountered.
func (r *BufBinReader) Error() error {
	return r.Err
}

// fail sets io.EOF if nothing is left and io.ErrUnexpectedEOF otherwise.
func (r *BufBinReader) fail() {
	if r.Len() == 0 {
		r.Err = io.EOF
	} else {
		r.Err = io.ErrUnexpectedEOF
	}
}
