package main

import (
	"encoding/binary"
	"encoding/json"
	"strconv"
	"strings"
)

// ---------- JSON Conversions ----------

func ToJSON[T any](v T, objectType string, chain SDKInterface) string {
	b, err := json.Marshal(v)
	if err != nil {
		chain.Abort("failed to marshal " + objectType)
	}
	return string(b)
}

// ---------- UInt/String Helpers ----------

func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}

// ---------- Parsing Helpers ----------

func nextField(s *string) string {
	i := strings.IndexByte(*s, '|')
	if i < 0 {
		f := *s
		*s = ""
		return f
	}
	f := (*s)[:i]
	*s = (*s)[i+1:]
	return f
}

func parseU64Fast(s string) uint64 {
	var n uint64
	for i := 0; i < len(s); i++ {
		n = n*10 + uint64(s[i]-'0')
	}
	return n
}

func parseU8Fast(s string) uint8 {
	var n uint8
	for i := 0; i < len(s); i++ {
		n = n*10 + uint8(s[i]-'0')
	}
	return n
}

func appendU64(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[i:]...)
}

func appendU8(dst []byte, v uint8) []byte { return appendU64(dst, uint64(v)) }

// parseFixedPoint3 parses a decimal string with up to 3 fractional digits
// and returns an integer scaled by 1000 (e.g., "1.23" -> 1230).
// No allocations, no floats.
func parseFixedPoint3(s string, chain SDKInterface) uint64 {
	n := len(s)
	if n == 0 {
		return 0
	}

	var intPart uint64
	var fracPart uint64
	var fracDigits int
	dotSeen := false

	for i := 0; i < n; i++ {
		c := s[i]

		if c == '.' {
			require(!dotSeen, "invalid number: multiple dots", chain)
			dotSeen = true
			continue
		}

		require(c >= '0' && c <= '9', "invalid character in number", chain)
		d := uint64(c - '0')

		if !dotSeen {
			intPart = (intPart << 3) + (intPart << 1) + d // mul by 10 without * op
		} else {
			require(fracDigits < 3, "too many fractional digits", chain)
			fracDigits++
			fracPart = (fracPart << 3) + (fracPart << 1) + d
		}
	}

	// scale fractional part to 3 digits
	if fracDigits == 1 {
		fracPart *= 100
	} else if fracDigits == 2 {
		fracPart *= 10
	}

	return intPart*1000 + fracPart
}

// ---------- Require ----------

func require(cond bool, msg string, chain SDKInterface) {
	if !cond {
		chain.Abort(msg)
	}
}

// rd is a binary reader utility over a byte slice,
// providing big-endian integer reads with safety checks.
type rd struct {
	b     []byte // raw buffer
	i     int    // current read index
	chain SDKInterface
}

// need ensures that n bytes are available from current position.
func (r *rd) need(n int) {
	if r.i+n > len(r.b) {
		r.chain.Abort("decode overflow")
	}
}

// u8 reads one byte.
func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

// u64 reads a uint64 in big-endian format.
func (r *rd) u64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

// bytes reads n raw bytes from the buffer.
func (r *rd) bytes(n int) []byte {
	r.need(n)
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

// str reads a length-prefixed string (2-byte length).
func (r *rd) str() string {
	l := int(r.u16())
	return string(r.bytes(l))
}

// u16 reads a uint16 in big-endian format.
func (r *rd) u16() uint16 {
	r.need(2)
	v := binary.BigEndian.Uint16(r.b[r.i : r.i+2])
	r.i += 2
	return v
}

// mustEnd verifies that the reader consumed all bytes exactly.
func (r *rd) mustEnd() {
	if r.i != len(r.b) {
		r.chain.Abort("trailing bytes")
	}
}

func appendString16(out []byte, s string, chain SDKInterface) []byte {
	if len(s) > 65535 {
		chain.Abort("string too long")
	}
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(len(s)))
	out = append(out, tmp[:]...)
	return append(out, s...)
}

func appendBEU64(out []byte, v uint64) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	return append(out, tmp[:]...)
}
