// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package nlattr implements the netlink extensible attribute (TLV) unit.
//
// An attribute on the wire is a 2-byte length (counting the 4-byte
// header), a 2-byte kind, the value bytes, and zero padding up to the
// next 4-byte boundary. Each object codec supplies its own mapping from
// kinds to typed values; any kind a codec does not recognize must be
// kept as a Raw so that a decode→encode round trip is lossless. That is
// the protocol's forward-compatibility contract: a newer kernel may send
// attribute kinds we have never heard of, and they must survive intact.
package nlattr

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mdlayher/netlink/nlenc"
)

const (
	headerLen = 4
	alignTo   = 4

	// maxLen is the largest value the 16-bit length field can declare.
	maxLen = 1<<16 - 1
)

// ErrTruncated is returned when an attribute's declared length is
// smaller than its own header or runs past the end of the buffer.
var ErrTruncated = errors.New("truncated attribute")

// Align rounds n up to the attribute alignment boundary.
func Align(n int) int {
	return (n + alignTo - 1) &^ (alignTo - 1)
}

// Attr is one attribute value. Typed implementations live with their
// object codecs; Raw is the shared fallback for everything else.
type Attr interface {
	// Type returns the attribute kind, including any NLA_F_* flag bits.
	Type() uint16
	// ValueLen returns the length of the value in bytes, excluding
	// header and padding.
	ValueLen() int
	// EncodeValue writes the value into b, which holds exactly
	// ValueLen() bytes.
	EncodeValue(b []byte) error
}

// Raw is an attribute whose kind the decoding codec did not recognize.
// It re-emits its original kind and bytes unchanged.
type Raw struct {
	Typ  uint16
	Data []byte
}

func (a Raw) Type() uint16  { return a.Typ }
func (a Raw) ValueLen() int { return len(a.Data) }

func (a Raw) EncodeValue(b []byte) error {
	copy(b, a.Data)
	return nil
}

// Fallback returns the preserving representation of an unrecognized
// attribute. It copies value, which otherwise aliases the decode buffer.
func Fallback(typ uint16, value []byte) Raw {
	return Raw{Typ: typ, Data: slices.Clone(value)}
}

// Walk iterates the attribute region b, calling fn with each kind and
// value slice. The value slice aliases b and is only valid during the
// call. Walk never reads past len(b): a declared length below 4 or
// beyond the remaining buffer fails with ErrTruncated. The final
// attribute may arrive without its padding.
func Walk(b []byte, fn func(typ uint16, value []byte) error) error {
	for len(b) > 0 {
		if len(b) < headerLen {
			return fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(b))
		}
		l := int(nlenc.Uint16(b[0:2]))
		typ := nlenc.Uint16(b[2:4])
		if l < headerLen {
			return fmt.Errorf("%w: declared length %d below attribute header", ErrTruncated, l)
		}
		if l > len(b) {
			return fmt.Errorf("%w: declared length %d exceeds %d remaining bytes", ErrTruncated, l, len(b))
		}
		if err := fn(typ, b[headerLen:l]); err != nil {
			return err
		}
		b = b[min(Align(l), len(b)):]
	}
	return nil
}

// EncodedLen returns the number of bytes Encode needs for attrs,
// including per-attribute headers and padding.
func EncodedLen(attrs []Attr) int {
	var n int
	for _, a := range attrs {
		n += Align(headerLen + a.ValueLen())
	}
	return n
}

// Encode writes attrs into b, which must hold at least EncodedLen(attrs)
// bytes.
func Encode(attrs []Attr, b []byte) error {
	for _, a := range attrs {
		vl := a.ValueLen()
		if headerLen+vl > maxLen {
			return fmt.Errorf("attribute kind %d: value length %d does not fit the length field", a.Type(), vl)
		}
		al := Align(headerLen + vl)
		if len(b) < al {
			return fmt.Errorf("attribute kind %d: short encode buffer: have %d, need %d", a.Type(), len(b), al)
		}
		nlenc.PutUint16(b[0:2], uint16(headerLen+vl))
		nlenc.PutUint16(b[2:4], a.Type())
		if err := a.EncodeValue(b[headerLen : headerLen+vl]); err != nil {
			return err
		}
		clear(b[headerLen+vl : al])
		b = b[al:]
	}
	return nil
}
