// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package route encodes and decodes RTM_*ROUTE message payloads: a
// 12-byte rtmsg header followed by RTA_* attributes.
package route

import (
	"fmt"
	"net/netip"

	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/internal/nlview"
	"github.com/routewire/rtnl/nlattr"
)

// headerLen is the size of struct rtmsg.
const headerLen = 12

// Header is the fixed rtmsg portion of a route message.
type Header struct {
	Family   family.Family
	DstLen   uint8
	SrcLen   uint8
	Tos      uint8
	Table    uint8 // low 8 bits; larger table ids ride in the Table attribute
	Protocol Protocol
	Scope    Scope
	Kind     Kind
	Flags    uint32 // RTM_F_*
}

// Message is one route message payload.
type Message struct {
	Header Header
	Attrs  []nlattr.Attr
}

func (m *Message) Decode(p []byte) error {
	v, err := nlview.At(p, headerLen)
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}
	m.Header = Header{
		Family:   family.Family(v.Byte(0)),
		DstLen:   v.Byte(1),
		SrcLen:   v.Byte(2),
		Tos:      v.Byte(3),
		Table:    v.Byte(4),
		Protocol: Protocol(v.Byte(5)),
		Scope:    Scope(v.Byte(6)),
		Kind:     Kind(v.Byte(7)),
		Flags:    v.Uint32(8),
	}
	m.Attrs = nil
	return nlattr.Walk(p[headerLen:], func(typ uint16, value []byte) error {
		a, err := parseAttr(typ, value)
		if err != nil {
			return fmt.Errorf("route: %w", err)
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
		return fmt.Errorf("route: short encode buffer: have %d, need %d", len(b), m.EncodedLen())
	}
	b[0] = byte(m.Header.Family)
	b[1] = m.Header.DstLen
	b[2] = m.Header.SrcLen
	b[3] = m.Header.Tos
	b[4] = m.Header.Table
	b[5] = byte(m.Header.Protocol)
	b[6] = byte(m.Header.Scope)
	b[7] = byte(m.Header.Kind)
	nlenc.PutUint32(b[8:12], m.Header.Flags)
	return nlattr.Encode(m.Attrs, b[headerLen:])
}

// Dst is RTA_DST, the destination prefix address.
type Dst netip.Addr

// Src is RTA_SRC, the source prefix address.
type Src netip.Addr

// PrefSrc is RTA_PREFSRC, the preferred source address.
type PrefSrc netip.Addr

// Gateway is RTA_GATEWAY, the next hop.
type Gateway netip.Addr

func (Dst) Type() uint16     { return unix.RTA_DST }
func (Src) Type() uint16     { return unix.RTA_SRC }
func (PrefSrc) Type() uint16 { return unix.RTA_PREFSRC }
func (Gateway) Type() uint16 { return unix.RTA_GATEWAY }

func (a Dst) ValueLen() int     { return nlattr.IPLen(netip.Addr(a)) }
func (a Src) ValueLen() int     { return nlattr.IPLen(netip.Addr(a)) }
func (a PrefSrc) ValueLen() int { return nlattr.IPLen(netip.Addr(a)) }
func (a Gateway) ValueLen() int { return nlattr.IPLen(netip.Addr(a)) }

func (a Dst) EncodeValue(b []byte) error     { return nlattr.PutIP(b, netip.Addr(a)) }
func (a Src) EncodeValue(b []byte) error     { return nlattr.PutIP(b, netip.Addr(a)) }
func (a PrefSrc) EncodeValue(b []byte) error { return nlattr.PutIP(b, netip.Addr(a)) }
func (a Gateway) EncodeValue(b []byte) error { return nlattr.PutIP(b, netip.Addr(a)) }

// OIF is RTA_OIF, the output interface index.
type OIF uint32

// IIF is RTA_IIF, the input interface index.
type IIF uint32

// Priority is RTA_PRIORITY, the route metric.
type Priority uint32

// Table is RTA_TABLE, the full 32-bit routing table id.
type Table uint32

// Mark is RTA_MARK, the firewall mark.
type Mark uint32

func (OIF) Type() uint16      { return unix.RTA_OIF }
func (IIF) Type() uint16      { return unix.RTA_IIF }
func (Priority) Type() uint16 { return unix.RTA_PRIORITY }
func (Table) Type() uint16    { return unix.RTA_TABLE }
func (Mark) Type() uint16     { return unix.RTA_MARK }

func (OIF) ValueLen() int      { return 4 }
func (IIF) ValueLen() int      { return 4 }
func (Priority) ValueLen() int { return 4 }
func (Table) ValueLen() int    { return 4 }
func (Mark) ValueLen() int     { return 4 }

func (a OIF) EncodeValue(b []byte) error      { nlenc.PutUint32(b, uint32(a)); return nil }
func (a IIF) EncodeValue(b []byte) error      { nlenc.PutUint32(b, uint32(a)); return nil }
func (a Priority) EncodeValue(b []byte) error { nlenc.PutUint32(b, uint32(a)); return nil }
func (a Table) EncodeValue(b []byte) error    { nlenc.PutUint32(b, uint32(a)); return nil }
func (a Mark) EncodeValue(b []byte) error     { nlenc.PutUint32(b, uint32(a)); return nil }

func parseAttr(typ uint16, v []byte) (nlattr.Attr, error) {
	switch typ {
	case unix.RTA_DST:
		ip, err := nlattr.IP(v)
		return Dst(ip), wrapAttrErr("RTA_DST", err)
	case unix.RTA_SRC:
		ip, err := nlattr.IP(v)
		return Src(ip), wrapAttrErr("RTA_SRC", err)
	case unix.RTA_PREFSRC:
		ip, err := nlattr.IP(v)
		return PrefSrc(ip), wrapAttrErr("RTA_PREFSRC", err)
	case unix.RTA_GATEWAY:
		ip, err := nlattr.IP(v)
		return Gateway(ip), wrapAttrErr("RTA_GATEWAY", err)
	case unix.RTA_OIF:
		u, err := nlattr.Uint32(v)
		return OIF(u), wrapAttrErr("RTA_OIF", err)
	case unix.RTA_IIF:
		u, err := nlattr.Uint32(v)
		return IIF(u), wrapAttrErr("RTA_IIF", err)
	case unix.RTA_PRIORITY:
		u, err := nlattr.Uint32(v)
		return Priority(u), wrapAttrErr("RTA_PRIORITY", err)
	case unix.RTA_TABLE:
		u, err := nlattr.Uint32(v)
		return Table(u), wrapAttrErr("RTA_TABLE", err)
	case unix.RTA_MARK:
		u, err := nlattr.Uint32(v)
		return Mark(u), wrapAttrErr("RTA_MARK", err)
	default:
		return nlattr.Fallback(typ, v), nil
	}
}

func wrapAttrErr(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}
