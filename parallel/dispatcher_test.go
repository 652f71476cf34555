// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package parallel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-lzjody/lzjody"
)

func TestCompressDecompressStreamRoundtrip(t *testing.T) {
	var src bytes.Buffer
	for i := 0; i < 9; i++ {
		block := bytes.Repeat([]byte{byte(i), byte(i + 1)}, lzjody.MaxBlockSize/2)
		src.Write(block[:lzjody.MaxBlockSize])
	}
	// Trailing short block exercises the partial-read tail.
	src.Write(bytes.Repeat([]byte{0xEE}, 37))

	original := src.Bytes()

	d := NewDispatcher(4, lzjody.CompressOptions{})
	defer d.Stop()

	var framed bytes.Buffer
	require.NoError(t, d.CompressStream(bytes.NewReader(original), &framed))

	var decoded bytes.Buffer
	require.NoError(t, d.DecompressStream(bytes.NewReader(framed.Bytes()), &decoded))

	require.Equal(t, original, decoded.Bytes())
}

func TestCompressStreamReusesRunningDispatcher(t *testing.T) {
	d := NewDispatcher(2, lzjody.CompressOptions{})
	require.NoError(t, d.Start())
	defer d.Stop()

	var framed bytes.Buffer
	err := d.CompressStream(bytes.NewReader(bytes.Repeat([]byte{0x01}, 4096)), &framed)
	require.NoError(t, err)
	require.True(t, framed.Len() > 0)
}
