// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package rtnl decodes and encodes the payloads of NETLINK_ROUTE
// messages: the byte-level bodies userspace exchanges with the kernel to
// create, inspect, or delete links, addresses, routes, and the other
// route-domain objects.
//
// The package deliberately stops at the payload boundary. The netlink
// envelope (framing, sequence numbers, multipart reassembly) belongs to
// a transport such as github.com/mdlayher/netlink; Pack and Unpack
// bridge the two.
//
// Decode is keyed on the 16-bit RTM type from the envelope and returns a
// Message, a tagged union over the object payload types. The variant set
// grows as the kernel grows; switch on the predicates or accessors with
// a default arm rather than assuming the list is final.
package rtnl

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/addr"
	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/link"
	"github.com/routewire/rtnl/neigh"
	"github.com/routewire/rtnl/neightbl"
	"github.com/routewire/rtnl/nsid"
	"github.com/routewire/rtnl/prefix"
	"github.com/routewire/rtnl/route"
	"github.com/routewire/rtnl/rule"
	"github.com/routewire/rtnl/tc"
)

// ErrUnknownType is returned by Decode for a type code outside the
// route-domain registry. It is the caller's policy whether to skip, log,
// or abort; it is not a structural parse failure.
var ErrUnknownType = errors.New("rtnl: unknown route message type")

// payload is the contract every object codec satisfies.
type payload interface {
	EncodedLen() int
	Encode(b []byte) error
}

// Message is one route-domain message: an operation code plus the
// payload of the object it operates on. The zero Message is invalid;
// values come from Decode or the per-operation constructors.
type Message struct {
	typ uint16
	obj payload
}

// Type returns the RTM_* code of the message. It is total over every
// constructible Message and always matches the code Decode routed on.
func (m Message) Type() uint16 { return m.typ }

// EncodedLen returns the number of bytes Encode writes.
func (m Message) EncodedLen() int {
	if m.obj == nil {
		return 0
	}
	return m.obj.EncodedLen()
}

// Encode writes the message payload into b, which must hold
// EncodedLen() bytes. The netlink envelope is not written; see Pack.
func (m Message) Encode(b []byte) error {
	if m.obj == nil {
		return errors.New("rtnl: encode of zero Message")
	}
	return m.obj.Encode(b)
}

// MarshalBinary encodes the message payload into a fresh buffer.
func (m Message) MarshalBinary() ([]byte, error) {
	b := make([]byte, m.EncodedLen())
	if err := m.Encode(b); err != nil {
		return nil, err
	}
	return b, nil
}

// Decode parses the payload p of a message with the given RTM type code.
//
// Two deviations from strict parsing are tolerated, both inherited from
// iproute2, which sends RTM_GETLINK and RTM_GETADDR requests whose body
// is just the address family byte plus three bytes of padding instead of
// a full object header. For exactly those two codes, a 4-byte payload
// that fails structural decoding yields a default message with only the
// family set. Every other failure is reported: a structural error for a
// registered code, ErrUnknownType otherwise.
func Decode(typ uint16, p []byte) (Message, error) {
	switch typ {
	case unix.RTM_NEWLINK, unix.RTM_DELLINK, unix.RTM_GETLINK, unix.RTM_SETLINK,
		unix.RTM_NEWLINKPROP, unix.RTM_DELLINKPROP:
		msg := new(link.Message)
		if err := msg.Decode(p); err != nil {
			if typ != unix.RTM_GETLINK || len(p) != 4 {
				return Message{}, err
			}
			msg = new(link.Message)
			msg.Header.Family = family.Family(p[0])
		}
		return Message{typ, msg}, nil

	case unix.RTM_NEWADDR, unix.RTM_DELADDR, unix.RTM_GETADDR:
		msg := new(addr.Message)
		if err := msg.Decode(p); err != nil {
			if typ != unix.RTM_GETADDR || len(p) != 4 {
				return Message{}, err
			}
			msg = new(addr.Message)
			msg.Header.Family = family.Family(p[0])
		}
		return Message{typ, msg}, nil

	case unix.RTM_NEWROUTE, unix.RTM_DELROUTE, unix.RTM_GETROUTE:
		msg := new(route.Message)
		if err := msg.Decode(p); err != nil {
			return Message{}, err
		}
		return Message{typ, msg}, nil

	case unix.RTM_NEWNEIGH, unix.RTM_DELNEIGH, unix.RTM_GETNEIGH:
		msg := new(neigh.Message)
		if err := msg.Decode(p); err != nil {
			return Message{}, err
		}
		return Message{typ, msg}, nil

	case unix.RTM_NEWRULE, unix.RTM_DELRULE, unix.RTM_GETRULE:
		msg := new(rule.Message)
		if err := msg.Decode(p); err != nil {
			return Message{}, err
		}
		return Message{typ, msg}, nil

	case unix.RTM_NEWQDISC, unix.RTM_DELQDISC, unix.RTM_GETQDISC,
		unix.RTM_NEWTCLASS, unix.RTM_DELTCLASS, unix.RTM_GETTCLASS,
		unix.RTM_NEWTFILTER, unix.RTM_DELTFILTER, unix.RTM_GETTFILTER,
		unix.RTM_NEWCHAIN, unix.RTM_DELCHAIN, unix.RTM_GETCHAIN:
		msg := new(tc.Message)
		if err := msg.Decode(p); err != nil {
			return Message{}, err
		}
		return Message{typ, msg}, nil

	case unix.RTM_NEWPREFIX:
		msg := new(prefix.Message)
		if err := msg.Decode(p); err != nil {
			return Message{}, err
		}
		return Message{typ, msg}, nil

	case unix.RTM_NEWNEIGHTBL, unix.RTM_GETNEIGHTBL, unix.RTM_SETNEIGHTBL:
		msg := new(neightbl.Message)
		if err := msg.Decode(p); err != nil {
			return Message{}, err
		}
		return Message{typ, msg}, nil

	case unix.RTM_NEWNSID, unix.RTM_DELNSID, unix.RTM_GETNSID:
		msg := new(nsid.Message)
		if err := msg.Decode(p); err != nil {
			return Message{}, err
		}
		return Message{typ, msg}, nil

	default:
		return Message{}, fmt.Errorf("%w: 0x%x", ErrUnknownType, typ)
	}
}
