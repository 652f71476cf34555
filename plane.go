// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

// PlaneTransform exposes the byte-plane transform for callers outside
// the codec (the standalone bpxfrm tool) that want the same operation
// the literal-flush recursion uses internally.
func PlaneTransform(in, out []byte, length int, numPlanes int) error {
	return planeTransform(in, out, length, numPlanes)
}

// planeTransform performs a reversible N-plane byte interleave.
//
// For numPlanes > 1, every byte whose original index i satisfies
// i % numPlanes == p is written, for p = 0..numPlanes-1 in order, into
// out — grouping all plane-0 bytes, then all plane-1 bytes, and so on.
// For numPlanes < -1, the inverse permutation is applied: out[p + k*n]
// is filled from successive input bytes as p runs over the |numPlanes|
// planes. len(out) must equal length; the two directions are mutual
// inverses.
func planeTransform(in, out []byte, length int, numPlanes int) error {
	opos := 0

	switch {
	case numPlanes > 1:
		for plane := 0; plane < numPlanes; plane++ {
			for i := plane; i < length; i += numPlanes {
				out[opos] = in[i]
				opos++
			}
		}
	case numPlanes < -1:
		n := -numPlanes
		for plane := 0; plane < n; plane++ {
			for i := plane; i < length; i += n {
				out[i] = in[opos]
				opos++
			}
		}
	default:
		return ErrCodecInternal
	}

	if opos != length {
		return ErrCodecInternal
	}
	return nil
}
