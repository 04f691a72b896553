// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package nlview provides length-checked windows over the fixed-layout
// headers that open every route-netlink payload.
//
// A View borrows the caller's buffer for the duration of one decode; it
// owns nothing and must not be retained.
package nlview

import (
	"errors"
	"fmt"

	"github.com/mdlayher/netlink/nlenc"
)

// ErrShort is returned by At when the buffer cannot hold the requested
// header. Decoders surface it unwrapped inside their own errors so that
// callers (and the dispatcher's quirk handling) can test for it.
var ErrShort = errors.New("short buffer")

// View is a read-only window over one fixed-layout header.
type View struct {
	b []byte
}

// At checks that b can hold a size-byte header and returns a view over
// those bytes. The remainder of b (the attribute region) is b[size:].
func At(b []byte, size int) (View, error) {
	if len(b) < size {
		return View{}, fmt.Errorf("%w: have %d bytes, header needs %d", ErrShort, len(b), size)
	}
	return View{b[:size]}, nil
}

// The accessors take offsets that are compile-time layout constants;
// At already established that every field is in range.

func (v View) Byte(off int) byte     { return v.b[off] }
func (v View) Uint16(off int) uint16 { return nlenc.Uint16(v.b[off : off+2]) }
func (v View) Uint32(off int) uint32 { return nlenc.Uint32(v.b[off : off+4]) }
func (v View) Int32(off int) int32   { return nlenc.Int32(v.b[off : off+4]) }
