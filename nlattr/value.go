// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package nlattr

import (
	"fmt"

	"github.com/mdlayher/netlink/nlenc"
)

// Scalar value codecs shared by the object packages. Netlink scalars are
// host-endian; everything below goes through nlenc so the same bytes
// parse on any architecture the kernel runs on.

func badLen(what string, got, want int) error {
	return fmt.Errorf("%s attribute value: %d bytes, want %d", what, got, want)
}

// Uint8 decodes a 1-byte attribute value.
func Uint8(v []byte) (uint8, error) {
	if len(v) != 1 {
		return 0, badLen("uint8", len(v), 1)
	}
	return v[0], nil
}

// Uint16 decodes a 2-byte attribute value.
func Uint16(v []byte) (uint16, error) {
	if len(v) != 2 {
		return 0, badLen("uint16", len(v), 2)
	}
	return nlenc.Uint16(v), nil
}

// Uint32 decodes a 4-byte attribute value.
func Uint32(v []byte) (uint32, error) {
	if len(v) != 4 {
		return 0, badLen("uint32", len(v), 4)
	}
	return nlenc.Uint32(v), nil
}

// Uint64 decodes an 8-byte attribute value.
func Uint64(v []byte) (uint64, error) {
	if len(v) != 8 {
		return 0, badLen("uint64", len(v), 8)
	}
	return nlenc.Uint64(v), nil
}

// Int32 decodes a 4-byte signed attribute value.
func Int32(v []byte) (int32, error) {
	if len(v) != 4 {
		return 0, badLen("int32", len(v), 4)
	}
	return nlenc.Int32(v), nil
}

// String decodes a NUL-terminated string attribute value.
func String(v []byte) string {
	return nlenc.String(v)
}

// StringLen returns the encoded length of s as a string attribute value:
// the bytes of s plus the kernel's trailing NUL.
func StringLen(s string) int {
	return len(s) + 1
}

// PutString writes s NUL-terminated into b, which holds StringLen(s)
// bytes.
func PutString(b []byte, s string) {
	copy(b, s)
	b[len(s)] = 0
}
