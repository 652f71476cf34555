// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

import "encoding/binary"

// findSeq looks for arithmetic runs of 32-, 16-, and 8-bit little-endian
// integers at cs.ipos, in that width order; each width that reaches its
// minimum count emits its own Seq command and advances ipos
// independently (spec.md §4.4.3).
func findSeq(cs *compressorState) (bool, error) {
	compressed := false

	if ok, err := findSeq32(cs); err != nil {
		return false, err
	} else if ok {
		compressed = true
	}
	if ok, err := findSeq16(cs); err != nil {
		return false, err
	} else if ok {
		compressed = true
	}
	if ok, err := findSeq8(cs); err != nil {
		return false, err
	} else if ok {
		compressed = true
	}

	return compressed, nil
}

func findSeq32(cs *compressorState) (bool, error) {
	if cs.ipos+4 > cs.length {
		return false, nil
	}
	start := binary.LittleEndian.Uint32(cs.in[cs.ipos:])
	n := start
	count := 0
	for cs.ipos+count*4+4 <= cs.length && binary.LittleEndian.Uint32(cs.in[cs.ipos+count*4:]) == n {
		count++
		n++
	}
	if count < MinSeq32 {
		return false, nil
	}

	if err := flushLiterals(cs); err != nil {
		return false, err
	}
	opos, err := writeControl(cs.out, cs.opos, subSeq32, uint16(count))
	if err != nil {
		return false, err
	}
	cs.opos = opos
	binary.LittleEndian.PutUint32(cs.out[cs.opos:], start)
	cs.opos += 4
	cs.ipos += count * 4
	return true, nil
}

func findSeq16(cs *compressorState) (bool, error) {
	if cs.ipos+2 > cs.length {
		return false, nil
	}
	start := binary.LittleEndian.Uint16(cs.in[cs.ipos:])
	n := start
	count := 0
	for cs.ipos+count*2+2 <= cs.length && binary.LittleEndian.Uint16(cs.in[cs.ipos+count*2:]) == n {
		count++
		n++
	}
	if count < MinSeq16 {
		return false, nil
	}

	if err := flushLiterals(cs); err != nil {
		return false, err
	}
	opos, err := writeControl(cs.out, cs.opos, subSeq16, uint16(count))
	if err != nil {
		return false, err
	}
	cs.opos = opos
	binary.LittleEndian.PutUint16(cs.out[cs.opos:], start)
	cs.opos += 2
	cs.ipos += count * 2
	return true, nil
}

func findSeq8(cs *compressorState) (bool, error) {
	if cs.ipos+1 > cs.length {
		return false, nil
	}
	start := cs.in[cs.ipos]
	n := start
	count := 0
	for cs.ipos+count+1 <= cs.length && cs.in[cs.ipos+count] == n {
		count++
		n++
	}
	if count < MinSeq8 {
		return false, nil
	}

	if err := flushLiterals(cs); err != nil {
		return false, err
	}
	opos, err := writeControl(cs.out, cs.opos, subSeq8, uint16(count))
	if err != nil {
		return false, err
	}
	cs.opos = opos
	cs.out[cs.opos] = start
	cs.opos++
	cs.ipos += count
	return true, nil
}
