// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package addr

import (
	"bytes"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/nlattr"
)

var addrCmp = cmpopts.EquateComparable(Address{}, Local{}, Broadcast{}, Anycast{})

func wireAttr(b []byte, typ uint16, value []byte) []byte {
	a := make([]byte, nlattr.Align(4+len(value)))
	nlenc.PutUint16(a[0:2], uint16(4+len(value)))
	nlenc.PutUint16(a[2:4], typ)
	copy(a[4:], value)
	return append(b, a...)
}

func TestDecodeIPv4(t *testing.T) {
	p := make([]byte, 8)
	p[0] = byte(family.Inet)
	p[1] = 24 // prefix length
	p[3] = unix.RT_SCOPE_UNIVERSE
	nlenc.PutUint32(p[4:8], 2)
	p = wireAttr(p, unix.IFA_LOCAL, []byte{192, 0, 2, 1})
	p = wireAttr(p, unix.IFA_LABEL, []byte("eth0\x00"))
	p = wireAttr(p, unix.IFA_FLAGS, nlenc.Uint32Bytes(unix.IFA_F_PERMANENT))

	var m Message
	if err := m.Decode(p); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := Message{
		Header: Header{Family: family.Inet, PrefixLen: 24, Index: 2},
		Attrs: []nlattr.Attr{
			Local(netip.AddrFrom4([4]byte{192, 0, 2, 1})),
			Label("eth0"),
			Flags(unix.IFA_F_PERMANENT),
		},
	}
	if diff := cmp.Diff(want, m, addrCmp); diff != "" {
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

func TestRoundTripIPv6(t *testing.T) {
	in := Message{
		Header: Header{Family: family.Inet6, PrefixLen: 64, Scope: unix.RT_SCOPE_UNIVERSE, Index: 3},
		Attrs: []nlattr.Attr{
			Address(netip.MustParseAddr("2001:db8::1")),
			CacheInfo{Preferred: 3600, Valid: 7200, Created: 100, Updated: 100},
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
	if diff := cmp.Diff(in, out, addrCmp); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Run("short header", func(t *testing.T) {
		var m Message
		if err := m.Decode(make([]byte, 7)); err == nil {
			t.Fatal("Decode of 7 bytes succeeded")
		}
	})
	t.Run("bad address width", func(t *testing.T) {
		p := make([]byte, 8)
		p[0] = byte(family.Inet)
		p = wireAttr(p, unix.IFA_ADDRESS, []byte{192, 0, 2}) // neither 4 nor 16
		var m Message
		if err := m.Decode(p); err == nil {
			t.Fatal("Decode accepted 3-byte IFA_ADDRESS")
		}
	})
	t.Run("bad cacheinfo width", func(t *testing.T) {
		p := make([]byte, 8)
		p = wireAttr(p, unix.IFA_CACHEINFO, make([]byte, 12))
		var m Message
		if err := m.Decode(p); err == nil {
			t.Fatal("Decode accepted 12-byte IFA_CACHEINFO")
		}
	})
}
