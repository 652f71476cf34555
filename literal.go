// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/go-lzjody/lzjody

package lzjody

// reallyFlushLiterals writes the pending literal run as a plain
// Literal command with no further processing (spec.md §4.5 step 1).
func reallyFlushLiterals(cs *compressorState) error {
	if cs.literals == 0 {
		return nil
	}

	opos, err := writeControl(cs.out, cs.opos, classLit, uint16(cs.literals))
	if err != nil {
		return err
	}
	cs.opos = opos

	copy(cs.out[cs.opos:cs.opos+cs.literals], cs.in[cs.literalStart:cs.literalStart+cs.literals])
	cs.opos += cs.literals
	cs.literals = 0
	return nil
}

// flushLiterals attempts to re-compress the pending literal run under
// the byte-plane transform before emitting it (spec.md §4.5). On
// return cs.literals is always 0.
func flushLiterals(cs *compressorState) error {
	if cs.literals == 0 {
		return nil
	}

	if cs.literals < MinRLELength+MinPlaneLength || cs.opts.realFlush {
		return reallyFlushLiterals(cs)
	}

	planed := make([]byte, cs.literals)
	if err := planeTransform(cs.in[cs.literalStart:cs.literalStart+cs.literals], planed, cs.literals, PlaneCount); err != nil {
		return err
	}

	inner := &compressorState{
		in:     planed,
		length: cs.literals,
		out:    make([]byte, cs.literals+frameSlack),
		opts:   CompressOptions{FastLZ: cs.opts.FastLZ, NoPrefix: true, realFlush: true},
	}
	if err := encodeBlock(inner); err != nil {
		return err
	}

	if inner.opos+MinPlaneLength >= cs.literals {
		return reallyFlushLiterals(cs)
	}

	opos, err := writeControl(cs.out, cs.opos, subPlane, uint16(inner.opos))
	if err != nil {
		return err
	}
	cs.opos = opos
	copy(cs.out[cs.opos:cs.opos+inner.opos], inner.out[:inner.opos])
	cs.opos += inner.opos
	cs.literals = 0
	return nil
}
