// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rule encodes and decodes RTM_*RULE message payloads: a 12-byte
// fib_rule_hdr followed by FRA_* attributes.
package rule

import (
	"fmt"

	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/internal/nlview"
	"github.com/routewire/rtnl/nlattr"
)

// headerLen is the size of struct fib_rule_hdr.
const headerLen = 12

// Header is the fixed fib_rule_hdr portion of a rule message. Bytes 5
// and 6 are reserved.
type Header struct {
	Family family.Family
	DstLen uint8
	SrcLen uint8
	Tos    uint8
	Table  uint8 // low 8 bits; the full id rides in the Table attribute
	Action uint8 // FR_ACT_*
	Flags  uint32
}

// Message is one rule message payload.
type Message struct {
	Header Header
	Attrs  []nlattr.Attr
}

func (m *Message) Decode(p []byte) error {
	v, err := nlview.At(p, headerLen)
	if err != nil {
		return fmt.Errorf("rule: %w", err)
	}
	m.Header = Header{
		Family: family.Family(v.Byte(0)),
		DstLen: v.Byte(1),
		SrcLen: v.Byte(2),
		Tos:    v.Byte(3),
		Table:  v.Byte(4),
		Action: v.Byte(7),
		Flags:  v.Uint32(8),
	}
	m.Attrs = nil
	return nlattr.Walk(p[headerLen:], func(typ uint16, value []byte) error {
		a, err := parseAttr(typ, value)
		if err != nil {
			return fmt.Errorf("rule: %w", err)
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
		return fmt.Errorf("rule: short encode buffer: have %d, need %d", len(b), m.EncodedLen())
	}
	b[0] = byte(m.Header.Family)
	b[1] = m.Header.DstLen
	b[2] = m.Header.SrcLen
	b[3] = m.Header.Tos
	b[4] = m.Header.Table
	b[5], b[6] = 0, 0
	b[7] = m.Header.Action
	nlenc.PutUint32(b[8:12], m.Header.Flags)
	return nlattr.Encode(m.Attrs, b[headerLen:])
}

// Priority is FRA_PRIORITY, the rule preference.
type Priority uint32

// FwMark is FRA_FWMARK.
type FwMark uint32

// FwMask is FRA_FWMASK.
type FwMask uint32

// Table is FRA_TABLE, the full 32-bit routing table id.
type Table uint32

func (Priority) Type() uint16 { return unix.FRA_PRIORITY }
func (FwMark) Type() uint16   { return unix.FRA_FWMARK }
func (FwMask) Type() uint16   { return unix.FRA_FWMASK }
func (Table) Type() uint16    { return unix.FRA_TABLE }

func (Priority) ValueLen() int { return 4 }
func (FwMark) ValueLen() int   { return 4 }
func (FwMask) ValueLen() int   { return 4 }
func (Table) ValueLen() int    { return 4 }

func (a Priority) EncodeValue(b []byte) error { nlenc.PutUint32(b, uint32(a)); return nil }
func (a FwMark) EncodeValue(b []byte) error   { nlenc.PutUint32(b, uint32(a)); return nil }
func (a FwMask) EncodeValue(b []byte) error   { nlenc.PutUint32(b, uint32(a)); return nil }
func (a Table) EncodeValue(b []byte) error    { nlenc.PutUint32(b, uint32(a)); return nil }

// IIfName is FRA_IIFNAME, the input interface match.
type IIfName string

// OIfName is FRA_OIFNAME, the output interface match.
type OIfName string

func (IIfName) Type() uint16 { return unix.FRA_IIFNAME }
func (OIfName) Type() uint16 { return unix.FRA_OIFNAME }

func (a IIfName) ValueLen() int { return nlattr.StringLen(string(a)) }
func (a OIfName) ValueLen() int { return nlattr.StringLen(string(a)) }

func (a IIfName) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

func (a OIfName) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

func parseAttr(typ uint16, v []byte) (nlattr.Attr, error) {
	switch typ {
	case unix.FRA_PRIORITY:
		u, err := nlattr.Uint32(v)
		return Priority(u), wrapAttrErr("FRA_PRIORITY", err)
	case unix.FRA_FWMARK:
		u, err := nlattr.Uint32(v)
		return FwMark(u), wrapAttrErr("FRA_FWMARK", err)
	case unix.FRA_FWMASK:
		u, err := nlattr.Uint32(v)
		return FwMask(u), wrapAttrErr("FRA_FWMASK", err)
	case unix.FRA_TABLE:
		u, err := nlattr.Uint32(v)
		return Table(u), wrapAttrErr("FRA_TABLE", err)
	case unix.FRA_IIFNAME:
		return IIfName(nlattr.String(v)), nil
	case unix.FRA_OIFNAME:
		return OIfName(nlattr.String(v)), nil
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
