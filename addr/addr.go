// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package addr encodes and decodes RTM_*ADDR message payloads: an 8-byte
// ifaddrmsg header followed by IFA_* attributes.
package addr

import (
	"fmt"
	"net/netip"

	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/internal/nlview"
	"github.com/routewire/rtnl/nlattr"
)

// headerLen is the size of struct ifaddrmsg.
const headerLen = 8

// Header is the fixed ifaddrmsg portion of an address message.
type Header struct {
	Family    family.Family
	PrefixLen uint8
	Flags     uint8 // IFA_F_* (low byte; the full set rides in the Flags attribute)
	Scope     uint8
	Index     uint32
}

// Message is one address message payload.
type Message struct {
	Header Header
	Attrs  []nlattr.Attr
}

func (m *Message) Decode(p []byte) error {
	v, err := nlview.At(p, headerLen)
	if err != nil {
		return fmt.Errorf("addr: %w", err)
	}
	m.Header = Header{
		Family:    family.Family(v.Byte(0)),
		PrefixLen: v.Byte(1),
		Flags:     v.Byte(2),
		Scope:     v.Byte(3),
		Index:     v.Uint32(4),
	}
	m.Attrs = nil
	return nlattr.Walk(p[headerLen:], func(typ uint16, value []byte) error {
		a, err := parseAttr(typ, value)
		if err != nil {
			return fmt.Errorf("addr: %w", err)
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
		return fmt.Errorf("addr: short encode buffer: have %d, need %d", len(b), m.EncodedLen())
	}
	b[0] = byte(m.Header.Family)
	b[1] = m.Header.PrefixLen
	b[2] = m.Header.Flags
	b[3] = m.Header.Scope
	nlenc.PutUint32(b[4:8], m.Header.Index)
	return nlattr.Encode(m.Attrs, b[headerLen:])
}

// Address is IFA_ADDRESS: for IPv4 the peer (or same as Local), for
// IPv6 the interface address.
type Address netip.Addr

// Local is IFA_LOCAL, the interface address proper.
type Local netip.Addr

// Broadcast is IFA_BROADCAST.
type Broadcast netip.Addr

// Anycast is IFA_ANYCAST.
type Anycast netip.Addr

func (Address) Type() uint16   { return unix.IFA_ADDRESS }
func (Local) Type() uint16     { return unix.IFA_LOCAL }
func (Broadcast) Type() uint16 { return unix.IFA_BROADCAST }
func (Anycast) Type() uint16   { return unix.IFA_ANYCAST }

func (a Address) ValueLen() int   { return nlattr.IPLen(netip.Addr(a)) }
func (a Local) ValueLen() int     { return nlattr.IPLen(netip.Addr(a)) }
func (a Broadcast) ValueLen() int { return nlattr.IPLen(netip.Addr(a)) }
func (a Anycast) ValueLen() int   { return nlattr.IPLen(netip.Addr(a)) }

func (a Address) EncodeValue(b []byte) error   { return nlattr.PutIP(b, netip.Addr(a)) }
func (a Local) EncodeValue(b []byte) error     { return nlattr.PutIP(b, netip.Addr(a)) }
func (a Broadcast) EncodeValue(b []byte) error { return nlattr.PutIP(b, netip.Addr(a)) }
func (a Anycast) EncodeValue(b []byte) error   { return nlattr.PutIP(b, netip.Addr(a)) }

// Label is IFA_LABEL, the IPv4 address label ("eth0:1").
type Label string

func (Label) Type() uint16    { return unix.IFA_LABEL }
func (a Label) ValueLen() int { return nlattr.StringLen(string(a)) }

func (a Label) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

// Flags is IFA_FLAGS, the full 32-bit flag word that outgrew the header
// byte.
type Flags uint32

func (Flags) Type() uint16    { return unix.IFA_FLAGS }
func (a Flags) ValueLen() int { return 4 }

func (a Flags) EncodeValue(b []byte) error {
	nlenc.PutUint32(b, uint32(a))
	return nil
}

// CacheInfo is IFA_CACHEINFO, address lifetime bookkeeping. Times are
// in hundredths of a second; ^uint32(0) means forever.
type CacheInfo struct {
	Preferred uint32
	Valid     uint32
	Created   uint32
	Updated   uint32
}

func (CacheInfo) Type() uint16    { return unix.IFA_CACHEINFO }
func (a CacheInfo) ValueLen() int { return 16 }

func (a CacheInfo) EncodeValue(b []byte) error {
	nlenc.PutUint32(b[0:4], a.Preferred)
	nlenc.PutUint32(b[4:8], a.Valid)
	nlenc.PutUint32(b[8:12], a.Created)
	nlenc.PutUint32(b[12:16], a.Updated)
	return nil
}

func parseAttr(typ uint16, v []byte) (nlattr.Attr, error) {
	switch typ {
	case unix.IFA_ADDRESS:
		ip, err := nlattr.IP(v)
		return Address(ip), wrapAttrErr("IFA_ADDRESS", err)
	case unix.IFA_LOCAL:
		ip, err := nlattr.IP(v)
		return Local(ip), wrapAttrErr("IFA_LOCAL", err)
	case unix.IFA_BROADCAST:
		ip, err := nlattr.IP(v)
		return Broadcast(ip), wrapAttrErr("IFA_BROADCAST", err)
	case unix.IFA_ANYCAST:
		ip, err := nlattr.IP(v)
		return Anycast(ip), wrapAttrErr("IFA_ANYCAST", err)
	case unix.IFA_LABEL:
		return Label(nlattr.String(v)), nil
	case unix.IFA_FLAGS:
		u, err := nlattr.Uint32(v)
		return Flags(u), wrapAttrErr("IFA_FLAGS", err)
	case unix.IFA_CACHEINFO:
		if len(v) != 16 {
			return nil, fmt.Errorf("IFA_CACHEINFO: value is %d bytes, want 16", len(v))
		}
		return CacheInfo{
			Preferred: nlenc.Uint32(v[0:4]),
			Valid:     nlenc.Uint32(v[4:8]),
			Created:   nlenc.Uint32(v[8:12]),
			Updated:   nlenc.Uint32(v[12:16]),
		}, nil
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
