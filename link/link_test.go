// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package link

import (
	"bytes"
	"errors"
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/nlattr"
)

// wireAttr appends one attribute to b.
func wireAttr(b []byte, typ uint16, value []byte) []byte {
	a := make([]byte, nlattr.Align(4+len(value)))
	nlenc.PutUint16(a[0:2], uint16(4+len(value)))
	nlenc.PutUint16(a[2:4], typ)
	copy(a[4:], value)
	return append(b, a...)
}

// header builds a 16-byte ifinfomsg.
func header(fam family.Family, typ uint16, index int32, flags, change uint32) []byte {
	b := make([]byte, 16)
	b[0] = byte(fam)
	nlenc.PutUint16(b[2:4], typ)
	nlenc.PutInt32(b[4:8], index)
	nlenc.PutUint32(b[8:12], flags)
	nlenc.PutUint32(b[12:16], change)
	return b
}

func TestDecode(t *testing.T) {
	p := header(family.Unspec, unix.ARPHRD_ETHER, 2, unix.IFF_UP|unix.IFF_RUNNING, 0)
	p = wireAttr(p, unix.IFLA_IFNAME, []byte("eth0\x00"))
	p = wireAttr(p, unix.IFLA_MTU, nlenc.Uint32Bytes(1500))
	p = wireAttr(p, unix.IFLA_ADDRESS, []byte{0x02, 0x00, 0x5e, 0x10, 0x00, 0x01})
	p = wireAttr(p, unix.IFLA_OPERSTATE, []byte{byte(OperUp)})
	p = wireAttr(p, 0x9c40, []byte{0xde, 0xad, 0xbe, 0xef}) // unknown kind

	var m Message
	if err := m.Decode(p); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := Message{
		Header: Header{
			Family: family.Unspec,
			Type:   unix.ARPHRD_ETHER,
			Index:  2,
			Flags:  unix.IFF_UP | unix.IFF_RUNNING,
		},
		Attrs: []nlattr.Attr{
			Name("eth0"),
			MTU(1500),
			Address(net.HardwareAddr{0x02, 0x00, 0x5e, 0x10, 0x00, 0x01}),
			OperUp,
			nlattr.Raw{Typ: 0x9c40, Data: []byte{0xde, 0xad, 0xbe, 0xef}},
		},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}

	// The bytes come back out exactly as they went in.
	out := make([]byte, m.EncodedLen())
	if err := m.Encode(out); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(p, out) {
		t.Fatalf("round trip differs:\n  in  % x\n  out % x", p, out)
	}
}

func TestRoundTripTyped(t *testing.T) {
	in := Message{
		Header: Header{Family: family.Unspec, Index: 7, Flags: unix.IFF_UP, Change: ^uint32(0)},
		Attrs: []nlattr.Attr{
			Name("veth0"),
			LinkIndex(3),
			Master(9),
			TxQueueLen(1000),
			Group(0),
			LinkMode(1),
			QDisc("noqueue"),
			IfAlias("uplink to core"),
			Broadcast(net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}),
			LinkInfo{Attrs: []nlattr.Attr{
				InfoKind("veth"),
				nlattr.Raw{Typ: unix.IFLA_INFO_DATA, Data: []byte{1, 2, 3, 4}},
			}},
			PropList{Typ: unix.IFLA_PROP_LIST | unix.NLA_F_NESTED, Attrs: []nlattr.Attr{
				AltName("uplink0"),
				AltName("port1"),
			}},
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

func TestNestedFlagPreserved(t *testing.T) {
	// Kernels set NLA_F_NESTED on IFLA_PROP_LIST; re-encoding must keep
	// the bit rather than normalize it away.
	inner := wireAttr(nil, unix.IFLA_ALT_IFNAME, []byte("alt0\x00"))
	p := header(family.Unspec, 0, 1, 0, 0)
	p = wireAttr(p, unix.IFLA_PROP_LIST|unix.NLA_F_NESTED, inner)

	var m Message
	if err := m.Decode(p); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	pl, ok := m.Attrs[0].(PropList)
	if !ok {
		t.Fatalf("attr is %T, want PropList", m.Attrs[0])
	}
	if pl.Type() != unix.IFLA_PROP_LIST|unix.NLA_F_NESTED {
		t.Errorf("PropList.Type() = %#x", pl.Type())
	}

	out := make([]byte, m.EncodedLen())
	if err := m.Encode(out); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(p, out) {
		t.Fatalf("round trip differs:\n  in  % x\n  out % x", p, out)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("short header", func(t *testing.T) {
		var m Message
		if err := m.Decode(make([]byte, 15)); err == nil {
			t.Fatal("Decode of 15 bytes succeeded")
		}
	})
	t.Run("truncated attr", func(t *testing.T) {
		p := header(family.Unspec, 0, 1, 0, 0)
		p = append(p, 0x0c, 0x00, 0x01, 0x00, 0xaa, 0xbb) // claims 12 bytes, has 6
		var m Message
		if err := m.Decode(p); !errors.Is(err, nlattr.ErrTruncated) {
			t.Fatalf("Decode error = %v, want ErrTruncated", err)
		}
	})
	t.Run("bad MTU width", func(t *testing.T) {
		p := header(family.Unspec, 0, 1, 0, 0)
		p = wireAttr(p, unix.IFLA_MTU, []byte{0x01, 0x02}) // u32 wants 4 bytes
		var m Message
		if err := m.Decode(p); err == nil {
			t.Fatal("Decode accepted 2-byte IFLA_MTU")
		}
	})
}

func TestOperStateString(t *testing.T) {
	if got := OperUp.String(); got != "up" {
		t.Errorf("OperUp.String() = %q", got)
	}
	if got := OperState(0x7f).String(); got != "operstate-0x7f" {
		t.Errorf("OperState(0x7f).String() = %q", got)
	}
}
