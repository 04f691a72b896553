// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package nlattr

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdlayher/netlink/nlenc"
)

// attr builds one wire attribute with the given kind and value,
// including padding.
func attr(typ uint16, value []byte) []byte {
	b := make([]byte, Align(4+len(value)))
	nlenc.PutUint16(b[0:2], uint16(4+len(value)))
	nlenc.PutUint16(b[2:4], typ)
	copy(b[4:], value)
	return b
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name    string
		b       []byte
		want    []Raw
		wantErr bool
	}{
		{
			name: "empty",
			b:    nil,
		},
		{
			name: "single",
			b:    attr(1, []byte{0xaa, 0xbb, 0xcc, 0xdd}),
			want: []Raw{{Typ: 1, Data: []byte{0xaa, 0xbb, 0xcc, 0xdd}}},
		},
		{
			name: "padded",
			b:    attr(2, []byte{0x01}),
			want: []Raw{{Typ: 2, Data: []byte{0x01}}},
		},
		{
			name: "two",
			b:    append(attr(1, []byte{0xff}), attr(7, []byte{1, 2, 3, 4, 5, 6})...),
			want: []Raw{
				{Typ: 1, Data: []byte{0xff}},
				{Typ: 7, Data: []byte{1, 2, 3, 4, 5, 6}},
			},
		},
		{
			// The kernel may omit the final attribute's padding.
			name: "unpadded final",
			b:    attr(3, []byte{0x01, 0x02, 0x03})[:7],
			want: []Raw{{Typ: 3, Data: []byte{0x01, 0x02, 0x03}}},
		},
		{
			name: "empty value",
			b:    attr(9, nil),
			want: []Raw{{Typ: 9, Data: []byte{}}},
		},
		{
			name:    "declared length below header",
			b:       []byte{0x03, 0x00, 0x01, 0x00},
			wantErr: true,
		},
		{
			name:    "declared length zero",
			b:       []byte{0x00, 0x00, 0x01, 0x00},
			wantErr: true,
		},
		{
			name:    "declared length beyond buffer",
			b:       []byte{0x0c, 0x00, 0x01, 0x00, 0xaa, 0xbb, 0xcc, 0xdd},
			wantErr: true,
		},
		{
			name:    "trailing garbage shorter than header",
			b:       append(attr(1, []byte{0xff}), 0x01, 0x02),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Raw
			err := Walk(tt.b, func(typ uint16, value []byte) error {
				got = append(got, Fallback(typ, value))
				return nil
			})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Walk succeeded, want error; got %+v", got)
				}
				if !errors.Is(err, ErrTruncated) {
					t.Fatalf("Walk error = %v, want ErrTruncated", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Walk: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("attrs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWalkNeverReadsPastBuffer(t *testing.T) {
	// A declared length that overruns must fail before fn sees the value.
	b := attr(1, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	b = b[:8] // truncate the value region
	err := Walk(b, func(typ uint16, value []byte) error {
		t.Fatalf("fn called with typ %d value % x", typ, value)
		return nil
	})
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("Walk error = %v, want ErrTruncated", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	attrs := []Attr{
		Raw{Typ: 1, Data: []byte{0xde, 0xad}},
		Raw{Typ: 0x8000 | 5, Data: []byte{1, 2, 3, 4, 5}}, // flag bits kept
		Raw{Typ: 999, Data: nil},
	}
	b := make([]byte, EncodedLen(attrs))
	if err := Encode(attrs, b); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var got []Attr
	err := Walk(b, func(typ uint16, value []byte) error {
		got = append(got, Fallback(typ, value))
		return nil
	})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(got) != len(attrs) {
		t.Fatalf("decoded %d attrs, want %d", len(got), len(attrs))
	}
	for i := range attrs {
		want, g := attrs[i].(Raw), got[i].(Raw)
		if want.Typ != g.Typ || !bytes.Equal(want.Data, g.Data) {
			t.Errorf("attr %d: got {%d % x}, want {%d % x}", i, g.Typ, g.Data, want.Typ, want.Data)
		}
	}

	// And the bytes themselves survive a second encode untouched.
	b2 := make([]byte, EncodedLen(got))
	if err := Encode(got, b2); err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(b, b2) {
		t.Fatalf("re-encode differs:\n  first  % x\n  second % x", b, b2)
	}
}

func TestEncodeZeroesPadding(t *testing.T) {
	attrs := []Attr{Raw{Typ: 1, Data: []byte{0xff}}}
	b := bytes.Repeat([]byte{0xaa}, EncodedLen(attrs))
	if err := Encode(attrs, b); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if b[5] != 0 || b[6] != 0 || b[7] != 0 {
		t.Fatalf("padding not zeroed: % x", b)
	}
}

func TestEncodeShortBuffer(t *testing.T) {
	attrs := []Attr{Raw{Typ: 1, Data: []byte{1, 2, 3, 4}}}
	if err := Encode(attrs, make([]byte, 7)); err == nil {
		t.Fatal("Encode into short buffer succeeded")
	}
}

func TestScalars(t *testing.T) {
	if _, err := Uint32([]byte{1, 2, 3}); err == nil {
		t.Error("Uint32 accepted 3 bytes")
	}
	if _, err := Uint16([]byte{1, 2, 3}); err == nil {
		t.Error("Uint16 accepted 3 bytes")
	}
	if _, err := Uint8(nil); err == nil {
		t.Error("Uint8 accepted 0 bytes")
	}
	u32 := make([]byte, 4)
	nlenc.PutUint32(u32, 0xdeadbeef)
	if got, err := Uint32(u32); err != nil || got != 0xdeadbeef {
		t.Errorf("Uint32 = %x, %v", got, err)
	}
	i32 := make([]byte, 4)
	nlenc.PutInt32(i32, -1)
	if got, err := Int32(i32); err != nil || got != -1 {
		t.Errorf("Int32 = %d, %v", got, err)
	}

	if got := String([]byte("eth0\x00")); got != "eth0" {
		t.Errorf("String = %q", got)
	}
	b := make([]byte, StringLen("lo"))
	PutString(b, "lo")
	if !bytes.Equal(b, []byte("lo\x00")) {
		t.Errorf("PutString = % x", b)
	}
}
