// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

// findRLE counts consecutive bytes at cs.ipos equal to in[ipos]; if the
// run is at least MinRLELength, it flushes pending literals, emits an
// RLE command, and advances ipos past the run (spec.md §4.4.1).
func findRLE(cs *compressorState) (bool, error) {
	c := cs.in[cs.ipos]
	length := 0
	for cs.ipos+length < cs.length && cs.in[cs.ipos+length] == c {
		length++
	}

	if length < MinRLELength {
		return false, nil
	}

	if err := flushLiterals(cs); err != nil {
		return false, err
	}

	opos, err := writeControl(cs.out, cs.opos, classRLE, uint16(length))
	if err != nil {
		return false, err
	}
	cs.opos = opos

	cs.out[cs.opos] = c
	cs.opos++
	cs.ipos += length
	return true, nil
}
