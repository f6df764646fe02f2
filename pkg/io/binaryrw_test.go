package io

import (
	"io"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteBE(t *testing.T) {
	w := NewBufBinWriter()
	w.WriteU16BE(0x1234)
	w.WriteI32BE(-2)
	w.WriteI16BE(-1)
	w.WriteU32BE(0xdeadbeef)
	w.WriteB(0x7f)
	w.WriteBytes([]byte{1, 2})
	require.NoError(t, w.Err)
	require.Equal(t, 2+4+2+4+1+2, w.Len())
	data := w.Bytes()
	require.Equal(t, []byte{0x12, 0x34, 0xff, 0xff, 0xff, 0xfe}, data[:6])

	r := NewBinReaderFromBuf(data)
	assert.Equal(t, uint16(0x1234), r.ReadU16BE())
	assert.Equal(t, int32(-2), r.ReadI32BE())
	assert.Equal(t, int16(-1), r.ReadI16BE())
	assert.Equal(t, uint32(0xdeadbeef), r.ReadU32BE())
	assert.Equal(t, byte(0x7f), r.ReadB())
	buf := make([]byte, 2)
	r.ReadBytes(buf)
	assert.Equal(t, []byte{1, 2}, buf)
	require.NoError(t, r.Err)
	require.Equal(t, 0, r.Len())

	r.ReadB()
	require.ErrorIs(t, r.Err, io.EOF)
}

func TestReaderStickyError(t *testing.T) {
	r := NewBinReaderFromBuf([]byte{1, 2, 3})
	require.Equal(t, uint32(0), r.ReadU32BE())
	require.ErrorIs(t, r.Error(), io.ErrUnexpectedEOF)
	require.Equal(t, 0, r.Pos)
	require.Equal(t, uint16(0), r.ReadU16BE())
	require.Equal(t, byte(0), r.ReadB())
	require.ErrorIs(t, r.Err, io.ErrUnexpectedEOF)
}

func TestBytesTruncated(t *testing.T) {
	r := NewBinReaderFromBuf([]byte{1})
	b := make([]byte, 3)
	r.ReadBytes(b)
	require.ErrorIs(t, r.Err, io.ErrUnexpectedEOF)
}

func TestCString(t *testing.T) {
	w := NewBufBinWriter()
	w.WriteCString("café €")
	w.WriteCString("")
	require.NoError(t, w.Err)
	data := w.Bytes()
	require.Equal(t, []byte{'c', 'a', 'f', 0xe9, ' ', 0x80, 0, 0}, data)

	r := NewBinReaderFromBuf(data)
	require.Equal(t, "café €", r.ReadCString())
	require.Equal(t, "", r.ReadCString())
	require.NoError(t, r.Err)

	require.Equal(t, "", r.ReadCString())
	require.ErrorIs(t, r.Err, io.EOF)
}

func TestCStringErrors(t *testing.T) {
	r := NewBinReaderFromBuf([]byte{'a', 'b'})
	require.Equal(t, "", r.ReadCString())
	require.ErrorIs(t, r.Err, io.ErrUnexpectedEOF)
	require.Equal(t, 0, r.Pos)

	w := NewBufBinWriter()
	w.WriteCString("a\x00b")
	require.ErrorIs(t, w.Err, ErrNulInString)

	w = NewBufBinWriter()
	w.WriteCString("世")
	require.ErrorIs(t, w.Err, ErrNotCP1252)
}

func TestCStringAllBytes(t *testing.T) {
	for b := 1; b <= 0xff; b++ {
		data := []byte{byte(b), 0}
		r := NewBinReaderFromBuf(data)
		s := r.ReadCString()
		require.NoError(t, r.Err, "byte %#x", b)
		require.True(t, utf8.ValidString(s), "byte %#x", b)

		w := NewBufBinWriter()
		w.WriteCString(s)
		require.NoError(t, w.Err, "byte %#x", b)
		require.Equal(t, data, w.Bytes(), "byte %#x", b)
	}

	r := NewBinReaderFromBuf([]byte{0x80, 0x81, 0x9d, 0})
	require.Equal(t, "€\u0081\u009d", r.ReadCString())

	w := NewBufBinWriter()
	w.WriteCString("\ufffd")
	require.ErrorIs(t, w.Err, ErrNotCP1252)
}

func TestBufWriterReset(t *testing.T) {
	w := NewBufBinWriter()
	w.WriteB(1)
	_ = w.Bytes()
	w.WriteB(2)
	require.Error(t, w.Err)
	require.Nil(t, w.Bytes())

	w.Reset()
	w.WriteB(3)
	require.Equal(t, []byte{3}, w.Bytes())
}
