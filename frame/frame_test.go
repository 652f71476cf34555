// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package frame

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadFrameCompressed(t *testing.T) {
	compressed := []byte{0x01, 0x02, 0x03}
	raw := bytes.Repeat([]byte{0xAA}, 10)

	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, compressed, raw, 0))

	payload, flags, err := ReadFrame(&buf)
	require.NoError(t, err)
	require.Equal(t, compressed, payload)
	require.Zero(t, flags&NoCompress)
}

func TestWriteReadFrameNoCompressFallback(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAA}, 10)
	compressed := bytes.Repeat([]byte{0xAA}, 20) // worse than raw

	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, compressed, raw, 0))

	payload, flags, err := ReadFrame(&buf)
	require.NoError(t, err)
	require.Equal(t, raw, payload)
	require.NotZero(t, flags&NoCompress)
}

func TestReadFrameRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x7f, 0xff, 0xff, 0xff}) // ~0x7fffffff masked to 28 bits, still far over maxPayload

	_, _, err := ReadFrame(&buf)
	require.ErrorIs(t, err, ErrFrameTooLarge)
}

func TestReadLegacyFrame(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	var buf bytes.Buffer
	buf.Write([]byte{byte(len(payload)), 0x00})
	buf.Write(payload)

	got, err := ReadLegacyFrame(&buf)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestReadFrameShortRead(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x00, 0x00, 0x05})
	buf.Write([]byte{0x01, 0x02}) // declared 5, only 2 present

	_, _, err := ReadFrame(&buf)
	require.ErrorIs(t, err, ErrShortRead)
}
