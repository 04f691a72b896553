// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tc encodes and decodes the traffic-control message payloads
// (qdisc, class, filter, and chain operations): a 20-byte tcmsg header
// followed by TCA_* attributes.
//
// All four operation groups share the same payload layout; the RTM code
// in the envelope says which object a message concerns.
package tc

import (
	"fmt"

	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/internal/nlview"
	"github.com/routewire/rtnl/nlattr"
)

// headerLen is the size of struct tcmsg. Bytes 1-3 are padding.
const headerLen = 20

// Header is the fixed tcmsg portion of a traffic-control message.
type Header struct {
	Family family.Family
	Index  int32
	Handle uint32
	Parent uint32
	Info   uint32
}

// Message is one traffic-control message payload.
type Message struct {
	Header Header
	Attrs  []nlattr.Attr
}

func (m *Message) Decode(p []byte) error {
	v, err := nlview.At(p, headerLen)
	if err != nil {
		return fmt.Errorf("tc: %w", err)
	}
	m.Header = Header{
		Family: family.Family(v.Byte(0)),
		Index:  v.Int32(4),
		Handle: v.Uint32(8),
		Parent: v.Uint32(12),
		Info:   v.Uint32(16),
	}
	m.Attrs = nil
	return nlattr.Walk(p[headerLen:], func(typ uint16, value []byte) error {
		a, err := parseAttr(typ, value)
		if err != nil {
			return fmt.Errorf("tc: %w", err)
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
		return fmt.Errorf("tc: short encode buffer: have %d, need %d", len(b), m.EncodedLen())
	}
	b[0] = byte(m.Header.Family)
	b[1], b[2], b[3] = 0, 0, 0
	nlenc.PutInt32(b[4:8], m.Header.Index)
	nlenc.PutUint32(b[8:12], m.Header.Handle)
	nlenc.PutUint32(b[12:16], m.Header.Parent)
	nlenc.PutUint32(b[16:20], m.Header.Info)
	return nlattr.Encode(m.Attrs, b[headerLen:])
}

// Kind is TCA_KIND, the qdisc/class/filter implementation name
// ("fq_codel", "htb", ...).
type Kind string

func (Kind) Type() uint16    { return unix.TCA_KIND }
func (a Kind) ValueLen() int { return nlattr.StringLen(string(a)) }

func (a Kind) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

// Chain is TCA_CHAIN, the filter chain index.
type Chain uint32

func (Chain) Type() uint16  { return unix.TCA_CHAIN }
func (Chain) ValueLen() int { return 4 }

func (a Chain) EncodeValue(b []byte) error {
	nlenc.PutUint32(b, uint32(a))
	return nil
}

func parseAttr(typ uint16, v []byte) (nlattr.Attr, error) {
	switch typ {
	case unix.TCA_KIND:
		return Kind(nlattr.String(v)), nil
	case unix.TCA_CHAIN:
		u, err := nlattr.Uint32(v)
		if err != nil {
			return nil, fmt.Errorf("TCA_CHAIN: %w", err)
		}
		return Chain(u), nil
	default:
		// TCA_OPTIONS and statistics blobs are kind-specific; preserved
		// as received.
		return nlattr.Fallback(typ, v), nil
	}
}
