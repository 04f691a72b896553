// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package prefix encodes and decodes RTM_NEWPREFIX message payloads, the
// kernel's report of an IPv6 router-advertisement prefix: a 12-byte
// prefixmsg header followed by PREFIX_* attributes.
package prefix

import (
	"fmt"
	"net/netip"

	"github.com/mdlayher/netlink/nlenc"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/internal/nlview"
	"github.com/routewire/rtnl/nlattr"
)

// headerLen is the size of struct prefixmsg.
const headerLen = 12

// PREFIX_* attribute kinds from uapi/linux/rtnetlink.h; x/sys does not
// export these.
const (
	prefixUnspec    = 0
	prefixAddress   = 1
	prefixCacheInfo = 2
)

// Header is the fixed prefixmsg portion of a prefix message.
type Header struct {
	Family    family.Family
	Index     int32
	Type      uint8 // prefix option type, 3 for RA prefix information
	PrefixLen uint8
	Flags     uint8 // onlink/autonomous bits
}

// Message is one prefix message payload.
type Message struct {
	Header Header
	Attrs  []nlattr.Attr
}

func (m *Message) Decode(p []byte) error {
	v, err := nlview.At(p, headerLen)
	if err != nil {
		return fmt.Errorf("prefix: %w", err)
	}
	m.Header = Header{
		Family:    family.Family(v.Byte(0)),
		Index:     v.Int32(4),
		Type:      v.Byte(8),
		PrefixLen: v.Byte(9),
		Flags:     v.Byte(10),
	}
	m.Attrs = nil
	return nlattr.Walk(p[headerLen:], func(typ uint16, value []byte) error {
		a, err := parseAttr(typ, value)
		if err != nil {
			return fmt.Errorf("prefix: %w", err)
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
		return fmt.Errorf("prefix: short encode buffer: have %d, need %d", len(b), m.EncodedLen())
	}
	b[0] = byte(m.Header.Family)
	b[1], b[2], b[3] = 0, 0, 0
	nlenc.PutInt32(b[4:8], m.Header.Index)
	b[8] = m.Header.Type
	b[9] = m.Header.PrefixLen
	b[10] = m.Header.Flags
	b[11] = 0
	return nlattr.Encode(m.Attrs, b[headerLen:])
}

// Address is PREFIX_ADDRESS, the advertised prefix.
type Address netip.Addr

func (Address) Type() uint16    { return prefixAddress }
func (a Address) ValueLen() int { return nlattr.IPLen(netip.Addr(a)) }

func (a Address) EncodeValue(b []byte) error { return nlattr.PutIP(b, netip.Addr(a)) }

func parseAttr(typ uint16, v []byte) (nlattr.Attr, error) {
	switch typ {
	case prefixAddress:
		ip, err := nlattr.IP(v)
		if err != nil {
			return nil, fmt.Errorf("PREFIX_ADDRESS: %w", err)
		}
		return Address(ip), nil
	default:
		// PREFIX_CACHEINFO carries lifetimes; preserved as received.
		return nlattr.Fallback(typ, v), nil
	}
}
