// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package nsid encodes and decodes RTM_*NSID message payloads: a 4-byte
// rtgenmsg header (family byte plus padding) followed by NETNSA_*
// attributes identifying a network namespace.
package nsid

import (
	"fmt"

	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/internal/nlview"
	"github.com/routewire/rtnl/nlattr"
)

// headerLen is struct rtgenmsg padded to attribute alignment.
const headerLen = 4

// Header is the fixed rtgenmsg portion of a namespace-id message.
type Header struct {
	Family family.Family
}

// Message is one namespace-id message payload.
type Message struct {
	Header Header
	Attrs  []nlattr.Attr
}

func (m *Message) Decode(p []byte) error {
	v, err := nlview.At(p, headerLen)
	if err != nil {
		return fmt.Errorf("nsid: %w", err)
	}
	m.Header = Header{Family: family.Family(v.Byte(0))}
	m.Attrs = nil
	return nlattr.Walk(p[headerLen:], func(typ uint16, value []byte) error {
		a, err := parseAttr(typ, value)
		if err != nil {
			return fmt.Errorf("nsid: %w", err)
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
		return fmt.Errorf("nsid: short encode buffer: have %d, need %d", len(b), m.EncodedLen())
	}
	b[0] = byte(m.Header.Family)
	b[1], b[2], b[3] = 0, 0, 0
	return nlattr.Encode(m.Attrs, b[headerLen:])
}

// NSID is NETNSA_NSID, the namespace id; -1 means unassigned.
type NSID int32

func (NSID) Type() uint16  { return unix.NETNSA_NSID }
func (NSID) ValueLen() int { return 4 }

func (a NSID) EncodeValue(b []byte) error {
	nlenc.PutInt32(b, int32(a))
	return nil
}

// PID is NETNSA_PID, identifying the namespace by owning process.
type PID uint32

// FD is NETNSA_FD, identifying the namespace by open file descriptor.
type FD uint32

func (PID) Type() uint16 { return unix.NETNSA_PID }
func (FD) Type() uint16  { return unix.NETNSA_FD }

func (PID) ValueLen() int { return 4 }
func (FD) ValueLen() int  { return 4 }

func (a PID) EncodeValue(b []byte) error { nlenc.PutUint32(b, uint32(a)); return nil }
func (a FD) EncodeValue(b []byte) error  { nlenc.PutUint32(b, uint32(a)); return nil }

func parseAttr(typ uint16, v []byte) (nlattr.Attr, error) {
	switch typ {
	case unix.NETNSA_NSID:
		i, err := nlattr.Int32(v)
		if err != nil {
			return nil, fmt.Errorf("NETNSA_NSID: %w", err)
		}
		return NSID(i), nil
	case unix.NETNSA_PID:
		u, err := nlattr.Uint32(v)
		if err != nil {
			return nil, fmt.Errorf("NETNSA_PID: %w", err)
		}
		return PID(u), nil
	case unix.NETNSA_FD:
		u, err := nlattr.Uint32(v)
		if err != nil {
			return nil, fmt.Errorf("NETNSA_FD: %w", err)
		}
		return FD(u), nil
	default:
		return nlattr.Fallback(typ, v), nil
	}
}
