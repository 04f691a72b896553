// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package neightbl encodes and decodes RTM_*NEIGHTBL message payloads:
// a 4-byte ndtmsg header followed by NDTA_* attributes describing a
// neighbor table's tunables.
package neightbl

import (
	"fmt"

	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/internal/nlview"
	"github.com/routewire/rtnl/nlattr"
)

// headerLen is the size of struct ndtmsg. Bytes 1-3 are padding.
const headerLen = 4

// Header is the fixed ndtmsg portion of a neighbor-table message.
type Header struct {
	Family family.Family
}

// Message is one neighbor-table message payload.
type Message struct {
	Header Header
	Attrs  []nlattr.Attr
}

func (m *Message) Decode(p []byte) error {
	v, err := nlview.At(p, headerLen)
	if err != nil {
		return fmt.Errorf("neightbl: %w", err)
	}
	m.Header = Header{Family: family.Family(v.Byte(0))}
	m.Attrs = nil
	return nlattr.Walk(p[headerLen:], func(typ uint16, value []byte) error {
		a, err := parseAttr(typ, value)
		if err != nil {
			return fmt.Errorf("neightbl: %w", err)
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
		return fmt.Errorf("neightbl: short encode buffer: have %d, need %d", len(b), m.EncodedLen())
	}
	b[0] = byte(m.Header.Family)
	b[1], b[2], b[3] = 0, 0, 0
	return nlattr.Encode(m.Attrs, b[headerLen:])
}

// Name is NDTA_NAME, the table name ("arp_cache", "ndisc_cache").
type Name string

func (Name) Type() uint16    { return unix.NDTA_NAME }
func (a Name) ValueLen() int { return nlattr.StringLen(string(a)) }

func (a Name) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

// Threshold1 is NDTA_THRESH1, the garbage-collection soft floor.
type Threshold1 uint32

// Threshold2 is NDTA_THRESH2.
type Threshold2 uint32

// Threshold3 is NDTA_THRESH3, the hard ceiling.
type Threshold3 uint32

func (Threshold1) Type() uint16 { return unix.NDTA_THRESH1 }
func (Threshold2) Type() uint16 { return unix.NDTA_THRESH2 }
func (Threshold3) Type() uint16 { return unix.NDTA_THRESH3 }

func (Threshold1) ValueLen() int { return 4 }
func (Threshold2) ValueLen() int { return 4 }
func (Threshold3) ValueLen() int { return 4 }

func (a Threshold1) EncodeValue(b []byte) error { nlenc.PutUint32(b, uint32(a)); return nil }
func (a Threshold2) EncodeValue(b []byte) error { nlenc.PutUint32(b, uint32(a)); return nil }
func (a Threshold3) EncodeValue(b []byte) error { nlenc.PutUint32(b, uint32(a)); return nil }

// GCInterval is NDTA_GC_INTERVAL in milliseconds.
type GCInterval uint64

func (GCInterval) Type() uint16  { return unix.NDTA_GC_INTERVAL }
func (GCInterval) ValueLen() int { return 8 }

func (a GCInterval) EncodeValue(b []byte) error {
	nlenc.PutUint64(b, uint64(a))
	return nil
}

func parseAttr(typ uint16, v []byte) (nlattr.Attr, error) {
	switch typ {
	case unix.NDTA_NAME:
		return Name(nlattr.String(v)), nil
	case unix.NDTA_THRESH1:
		u, err := nlattr.Uint32(v)
		return Threshold1(u), wrapAttrErr("NDTA_THRESH1", err)
	case unix.NDTA_THRESH2:
		u, err := nlattr.Uint32(v)
		return Threshold2(u), wrapAttrErr("NDTA_THRESH2", err)
	case unix.NDTA_THRESH3:
		u, err := nlattr.Uint32(v)
		return Threshold3(u), wrapAttrErr("NDTA_THRESH3", err)
	case unix.NDTA_GC_INTERVAL:
		u, err := nlattr.Uint64(v)
		return GCInterval(u), wrapAttrErr("NDTA_GC_INTERVAL", err)
	default:
		// NDTA_PARMS and the config/stats blobs are nested structures
		// tuned per table; preserved as received.
		return nlattr.Fallback(typ, v), nil
	}
}

func wrapAttrErr(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}
