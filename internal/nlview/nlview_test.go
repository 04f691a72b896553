// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package nlview

import (
	"errors"
	"testing"

	"github.com/mdlayher/netlink/nlenc"
)

func TestAtShort(t *testing.T) {
	if _, err := At(make([]byte, 7), 8); !errors.Is(err, ErrShort) {
		t.Fatalf("At(7 bytes, 8) error = %v, want ErrShort", err)
	}
	if _, err := At(nil, 4); !errors.Is(err, ErrShort) {
		t.Fatalf("At(nil, 4) error = %v, want ErrShort", err)
	}
	if _, err := At(make([]byte, 8), 8); err != nil {
		t.Fatalf("At(8 bytes, 8): %v", err)
	}
}

func TestAccessors(t *testing.T) {
	b := make([]byte, 12)
	b[0] = 0x42
	nlenc.PutUint16(b[2:4], 0xbeef)
	nlenc.PutUint32(b[4:8], 0xdeadbeef)
	nlenc.PutInt32(b[8:12], -5)

	v, err := At(b, 12)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Byte(0); got != 0x42 {
		t.Errorf("Byte(0) = %#x", got)
	}
	if got := v.Uint16(2); got != 0xbeef {
		t.Errorf("Uint16(2) = %#x", got)
	}
	if got := v.Uint32(4); got != 0xdeadbeef {
		t.Errorf("Uint32(4) = %#x", got)
	}
	if got := v.Int32(8); got != -5 {
		t.Errorf("Int32(8) = %d", got)
	}
}
