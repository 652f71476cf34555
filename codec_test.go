// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"
)

func roundtrip(t *testing.T, in []byte, opts CompressOptions) []byte {
	t.Helper()

	compressed, err := Compress(in, opts)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(compressed, DefaultDecompressOptions(len(in)))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	if !bytes.Equal(out, in) {
		t.Fatalf("roundtrip mismatch: in len=%d out len=%d", len(in), len(out))
	}
	return compressed
}

func TestRoundtripTinyInputs(t *testing.T) {
	for _, l := range []int{1, MinLZMatch - 1, MinLZMatch, MinRLELength, MinRLELength - 1} {
		in := make([]byte, l)
		for i := range in {
			in[i] = byte(i*7 + 3)
		}
		roundtrip(t, in, CompressOptions{})
	}
}

func TestRoundtripMaxBlockSize(t *testing.T) {
	in := make([]byte, MaxBlockSize)
	for i := range in {
		in[i] = byte(i)
	}
	roundtrip(t, in, CompressOptions{})
}

func TestRoundtripAllZero(t *testing.T) {
	in := make([]byte, MaxBlockSize)
	roundtrip(t, in, CompressOptions{})
}

func TestRoundtripIncreasingByteSequence(t *testing.T) {
	in := make([]byte, MaxBlockSize)
	for i := range in {
		in[i] = byte(i)
	}
	compressed := roundtrip(t, in, CompressOptions{})
	if len(compressed) >= len(in) {
		t.Fatalf("expected Seq8 to compress an ascending byte ramp, got %d >= %d", len(compressed), len(in))
	}
}

func TestRoundtripAscending32BitCounter(t *testing.T) {
	in := make([]byte, MaxBlockSize)
	for i := 0; i*4+4 <= len(in); i++ {
		binary.LittleEndian.PutUint32(in[i*4:], uint32(i))
	}
	compressed := roundtrip(t, in, CompressOptions{})
	if len(compressed) >= len(in) {
		t.Fatalf("expected Seq32 to compress an ascending uint32 counter, got %d >= %d", len(compressed), len(in))
	}
}

func TestRoundtripRandomBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := make([]byte, MaxBlockSize)
	rng.Read(in)
	// A fully random block is exactly the scenario that pushes a single
	// literal run to MaxBlockSize, exercising the borrowed fifth value
	// bit in the control byte's full form.
	roundtrip(t, in, CompressOptions{})
}

func TestRoundtripPlaneCompressibleLiterals(t *testing.T) {
	in := make([]byte, MaxBlockSize/4)
	for i := range in {
		// Four interleaved slowly-varying channels: compresses well
		// under the byte-plane transform but defeats RLE/LZ/Seq on
		// its own (no single command minimum run survives the
		// interleave), forcing the literal-flush recursion to fire.
		in[i] = byte(i/4 + (i%4)*50)
	}
	compressed := roundtrip(t, in, CompressOptions{})
	if len(compressed) >= len(in) {
		t.Fatalf("expected plane-recursive literal flush to compress, got %d >= %d", len(compressed), len(in))
	}
}

func TestRoundtripOverlappingLZMatch(t *testing.T) {
	// Two literals, then an LZ match at offset 0 whose 208-byte length
	// runs past its own start: only a byte-wise copy reproduces it.
	in := bytes.Repeat([]byte{0xAB, 0xCD}, 105)
	roundtrip(t, in, CompressOptions{})
}

func TestRoundtripFastLZOption(t *testing.T) {
	in := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 40)
	roundtrip(t, in, CompressOptions{FastLZ: true})
}

func TestCompressRejectsOversizedBlock(t *testing.T) {
	in := make([]byte, MaxBlockSize+1)
	if _, err := Compress(in, CompressOptions{}); err != ErrBlockTooLarge {
		t.Fatalf("expected ErrBlockTooLarge, got %v", err)
	}
}

func TestRoundtripEmptyInput(t *testing.T) {
	compressed := roundtrip(t, nil, CompressOptions{})
	if !bytes.Equal(compressed, []byte{0, 0}) {
		t.Fatalf("expected a bare 2-byte zero-length prefix, got %v", compressed)
	}
}

func TestDecompressRequiresOutLen(t *testing.T) {
	if _, err := Decompress([]byte{0, 0}, DecompressOptions{}); err != ErrOptionsRequired {
		t.Fatalf("expected ErrOptionsRequired, got %v", err)
	}
}

func TestDecompressRejectsInvalidLZOffset(t *testing.T) {
	// A single LZ command (short form, offset 0) as the very first
	// command in the stream: offset 0 >= opos 0 must be rejected.
	body := []byte{classLZ | classShort | 0x00, 0x04}
	block := make([]byte, 2+len(body))
	binary.LittleEndian.PutUint16(block[0:2], uint16(len(body)))
	copy(block[2:], body)

	if _, err := Decompress(block, DefaultDecompressOptions(16)); err != ErrLZOffsetInvalid {
		t.Fatalf("expected ErrLZOffsetInvalid, got %v", err)
	}
}

func TestDecompressRejectsUnknownSubcommand(t *testing.T) {
	body := []byte{classExt | 0x0f, 0x00}
	block := make([]byte, 2+len(body))
	binary.LittleEndian.PutUint16(block[0:2], uint16(len(body)))
	copy(block[2:], body)

	if _, err := Decompress(block, DefaultDecompressOptions(16)); err != ErrUnknownSubcommand {
		t.Fatalf("expected ErrUnknownSubcommand, got %v", err)
	}
}

func TestCompressIntoMatchesCompress(t *testing.T) {
	in := bytes.Repeat([]byte{0x11, 0x22, 0x33}, 50)
	want, err := Compress(in, CompressOptions{})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	dst := make([]byte, maxCompressedSize(len(in)))
	n, err := CompressInto(in, dst, CompressOptions{})
	if err != nil {
		t.Fatalf("CompressInto failed: %v", err)
	}

	if !bytes.Equal(dst[:n], want) {
		t.Fatal("CompressInto output diverged from Compress output")
	}
}
