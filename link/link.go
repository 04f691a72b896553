// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package link encodes and decodes RTM_*LINK message payloads: a 16-byte
// ifinfomsg header followed by IFLA_* attributes.
package link

import (
	"fmt"

	"github.com/mdlayher/netlink/nlenc"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/internal/nlview"
	"github.com/routewire/rtnl/nlattr"
)

// headerLen is the size of struct ifinfomsg.
const headerLen = 16

// Header is the fixed ifinfomsg portion of a link message.
type Header struct {
	Family family.Family
	Type   uint16 // ARPHRD_* device type
	Index  int32
	Flags  uint32 // IFF_* flags
	Change uint32 // mask of flags being changed; ~0 on some senders
}

// Message is one link message payload.
type Message struct {
	Header Header
	Attrs  []nlattr.Attr
}

// Decode parses p. Unrecognized attribute kinds are preserved as
// nlattr.Raw; a short header or malformed attribute region is an error.
func (m *Message) Decode(p []byte) error {
	v, err := nlview.At(p, headerLen)
	if err != nil {
		return fmt.Errorf("link: %w", err)
	}
	m.Header = Header{
		Family: family.Family(v.Byte(0)),
		Type:   v.Uint16(2),
		Index:  v.Int32(4),
		Flags:  v.Uint32(8),
		Change: v.Uint32(12),
	}
	m.Attrs = nil
	return nlattr.Walk(p[headerLen:], func(typ uint16, value []byte) error {
		a, err := parseAttr(typ, value)
		if err != nil {
			return fmt.Errorf("link: %w", err)
		}
		m.Attrs = append(m.Attrs, a)
		return nil
	})
}

// EncodedLen returns the number of bytes Encode writes.
func (m *Message) EncodedLen() int {
	return headerLen + nlattr.EncodedLen(m.Attrs)
}

// Encode writes the message into b, which must hold EncodedLen() bytes.
func (m *Message) Encode(b []byte) error {
	if len(b) < m.EncodedLen() {
		return fmt.Errorf("link: short encode buffer: have %d, need %d", len(b), m.EncodedLen())
	}
	b[0] = byte(m.Header.Family)
	b[1] = 0
	nlenc.PutUint16(b[2:4], m.Header.Type)
	nlenc.PutInt32(b[4:8], m.Header.Index)
	nlenc.PutUint32(b[8:12], m.Header.Flags)
	nlenc.PutUint32(b[12:16], m.Header.Change)
	return nlattr.Encode(m.Attrs, b[headerLen:])
}
