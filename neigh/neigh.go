// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package neigh encodes and decodes RTM_*NEIGH message payloads: a
// 12-byte ndmsg header followed by NDA_* attributes.
package neigh

import (
	"fmt"
	"net"
	"net/netip"
	"slices"

	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/internal/nlview"
	"github.com/routewire/rtnl/nlattr"
)

// headerLen is the size of struct ndmsg. Bytes 1-3 are padding.
const headerLen = 12

// Header is the fixed ndmsg portion of a neighbor message.
type Header struct {
	Family family.Family
	Index  int32
	State  uint16 // NUD_* bit set
	Flags  uint8  // NTF_*
	Kind   uint8  // RTN_* entry type
}

// Message is one neighbor message payload.
type Message struct {
	Header Header
	Attrs  []nlattr.Attr
}

func (m *Message) Decode(p []byte) error {
	v, err := nlview.At(p, headerLen)
	if err != nil {
		return fmt.Errorf("neigh: %w", err)
	}
	m.Header = Header{
		Family: family.Family(v.Byte(0)),
		Index:  v.Int32(4),
		State:  v.Uint16(8),
		Flags:  v.Byte(10),
		Kind:   v.Byte(11),
	}
	m.Attrs = nil
	return nlattr.Walk(p[headerLen:], func(typ uint16, value []byte) error {
		a, err := parseAttr(typ, value)
		if err != nil {
			return fmt.Errorf("neigh: %w", err)
		}
		m.Attrs = append(m.Attrs, a)
		return nil
	})
}

func (m *Message) EncodedLen() int {
	return headerLen + nlattr.EncodedLen(m.Attrs)
}

func (m *Message) Encode(b []byte) error {
	if len(b) < m.EncodedLen() {
		return fmt.Errorf("neigh: short encode buffer: have %d, need %d", len(b), m.EncodedLen())
	}
	b[0] = byte(m.Header.Family)
	b[1], b[2], b[3] = 0, 0, 0
	nlenc.PutInt32(b[4:8], m.Header.Index)
	nlenc.PutUint16(b[8:10], m.Header.State)
	b[10] = m.Header.Flags
	b[11] = m.Header.Kind
	return nlattr.Encode(m.Attrs, b[headerLen:])
}

// Dst is NDA_DST, the neighbor's protocol address.
type Dst netip.Addr

func (Dst) Type() uint16    { return unix.NDA_DST }
func (a Dst) ValueLen() int { return nlattr.IPLen(netip.Addr(a)) }

func (a Dst) EncodeValue(b []byte) error { return nlattr.PutIP(b, netip.Addr(a)) }

// LLAddr is NDA_LLADDR, the neighbor's link-layer address.
type LLAddr net.HardwareAddr

func (LLAddr) Type() uint16    { return unix.NDA_LLADDR }
func (a LLAddr) ValueLen() int { return len(a) }

func (a LLAddr) EncodeValue(b []byte) error {
	copy(b, a)
	return nil
}

// Probes is NDA_PROBES.
type Probes uint32

// IfIndex is NDA_IFINDEX, for FDB entries.
type IfIndex uint32

func (Probes) Type() uint16  { return unix.NDA_PROBES }
func (IfIndex) Type() uint16 { return unix.NDA_IFINDEX }

func (Probes) ValueLen() int  { return 4 }
func (IfIndex) ValueLen() int { return 4 }

func (a Probes) EncodeValue(b []byte) error  { nlenc.PutUint32(b, uint32(a)); return nil }
func (a IfIndex) EncodeValue(b []byte) error { nlenc.PutUint32(b, uint32(a)); return nil }

func parseAttr(typ uint16, v []byte) (nlattr.Attr, error) {
	switch typ {
	case unix.NDA_DST:
		ip, err := nlattr.IP(v)
		if err != nil {
			// Bridge FDB neighbors put a MAC here; keep the bytes.
			return nlattr.Raw{Typ: typ, Data: slices.Clone(v)}, nil
		}
		return Dst(ip), nil
	case unix.NDA_LLADDR:
		return LLAddr(slices.Clone(v)), nil
	case unix.NDA_PROBES:
		u, err := nlattr.Uint32(v)
		if err != nil {
			return nil, fmt.Errorf("NDA_PROBES: %w", err)
		}
		return Probes(u), nil
	case unix.NDA_IFINDEX:
		u, err := nlattr.Uint32(v)
		if err != nil {
			return nil, fmt.Errorf("NDA_IFINDEX: %w", err)
		}
		return IfIndex(u), nil
	default:
		return nlattr.Fallback(typ, v), nil
	}
}
