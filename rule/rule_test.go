// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rule

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/nlattr"
)

func wireAttr(b []byte, typ uint16, value []byte) []byte {
	a := make([]byte, nlattr.Align(4+len(value)))
	nlenc.PutUint16(a[0:2], uint16(4+len(value)))
	nlenc.PutUint16(a[2:4], typ)
	copy(a[4:], value)
	return append(b, a...)
}

func TestDecode(t *testing.T) {
	p := make([]byte, 12)
	p[0] = byte(family.Inet)
	p[4] = unix.RT_TABLE_MAIN
	p[7] = unix.FR_ACT_TO_TBL
	p = wireAttr(p, unix.FRA_PRIORITY, nlenc.Uint32Bytes(32765))
	p = wireAttr(p, unix.FRA_FWMARK, nlenc.Uint32Bytes(0x29a))
	p = wireAttr(p, unix.FRA_IIFNAME, []byte("eth0\x00"))

	var m Message
	if err := m.Decode(p); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := Message{
		Header: Header{Family: family.Inet, Table: unix.RT_TABLE_MAIN, Action: unix.FR_ACT_TO_TBL},
		Attrs: []nlattr.Attr{
			Priority(32765),
			FwMark(0x29a),
			IIfName("eth0"),
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}

	out := make([]byte, m.EncodedLen())
	if err := m.Encode(out); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(p, out) {
		t.Fatalf("round trip differs:\n  in  % x\n  out % x", p, out)
	}
}

func TestRoundTrip(t *testing.T) {
	in := Message{
		Header: Header{Family: family.Inet6, Action: unix.FR_ACT_TO_TBL},
		Attrs: []nlattr.Attr{
			Table(1000),
			FwMask(0xffff),
			OIfName("wan0"),
			nlattr.Raw{Typ: unix.FRA_SUPPRESS_PREFIXLEN, Data: nlenc.Uint32Bytes(8)},
		},
	}
	b := make([]byte, in.EncodedLen())
	if err := in.Encode(b); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out Message
	if err := out.Decode(b); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
