// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package neigh

import (
	"bytes"
	"net"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/nlattr"
)

var neighCmp = cmpopts.EquateComparable(Dst{})

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
	nlenc.PutInt32(p[4:8], 2)
	nlenc.PutUint16(p[8:10], unix.NUD_REACHABLE)
	p[11] = unix.RTN_UNICAST
	p = wireAttr(p, unix.NDA_DST, []byte{192, 0, 2, 7})
	p = wireAttr(p, unix.NDA_LLADDR, []byte{0x02, 0x00, 0x5e, 0x10, 0x00, 0x07})
	p = wireAttr(p, unix.NDA_PROBES, nlenc.Uint32Bytes(1))

	var m Message
	if err := m.Decode(p); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := Message{
		Header: Header{Family: family.Inet, Index: 2, State: unix.NUD_REACHABLE, Kind: unix.RTN_UNICAST},
		Attrs: []nlattr.Attr{
			Dst(netip.AddrFrom4([4]byte{192, 0, 2, 7})),
			LLAddr(net.HardwareAddr{0x02, 0x00, 0x5e, 0x10, 0x00, 0x07}),
			Probes(1),
		},
	}
	if diff := cmp.Diff(want, m, neighCmp); diff != "" {
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

func TestFDBDstKeptRaw(t *testing.T) {
	// Bridge FDB entries carry a 6-byte MAC in NDA_DST. That is not an
	// IP address, but it must not be lost.
	p := make([]byte, 12)
	p[0] = byte(family.Bridge)
	p = wireAttr(p, unix.NDA_DST, []byte{0x02, 0x00, 0x5e, 0x10, 0x00, 0x01})

	var m Message
	if err := m.Decode(p); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	raw, ok := m.Attrs[0].(nlattr.Raw)
	if !ok {
		t.Fatalf("attr is %T, want nlattr.Raw", m.Attrs[0])
	}
	if raw.Typ != unix.NDA_DST || len(raw.Data) != 6 {
		t.Fatalf("raw = {%d % x}", raw.Typ, raw.Data)
	}

	out := make([]byte, m.EncodedLen())
	if err := m.Encode(out); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(p, out) {
		t.Fatalf("round trip differs:\n  in  % x\n  out % x", p, out)
	}
}

func TestRoundTripIPv6(t *testing.T) {
	in := Message{
		Header: Header{Family: family.Inet6, Index: 4, State: unix.NUD_STALE},
		Attrs: []nlattr.Attr{
			Dst(netip.MustParseAddr("fe80::1")),
			IfIndex(4),
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
	if diff := cmp.Diff(in, out, neighCmp); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
