// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package link

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/nlattr"
)

// LinkInfo is the nested IFLA_LINKINFO attribute set describing the
// link's kind-specific configuration.
//
// Typ preserves the kind bits exactly as received; senders disagree on
// whether NLA_F_NESTED is set here. The zero value encodes as plain
// IFLA_LINKINFO.
type LinkInfo struct {
	Typ   uint16
	Attrs []nlattr.Attr
}

func (a LinkInfo) Type() uint16 {
	if a.Typ != 0 {
		return a.Typ
	}
	return unix.IFLA_LINKINFO
}

func (a LinkInfo) ValueLen() int { return nlattr.EncodedLen(a.Attrs) }

func (a LinkInfo) EncodeValue(b []byte) error {
	return nlattr.Encode(a.Attrs, b)
}

// InfoKind is IFLA_INFO_KIND, the link type name ("veth", "bridge", ...).
type InfoKind string

func (InfoKind) Type() uint16    { return unix.IFLA_INFO_KIND }
func (a InfoKind) ValueLen() int { return nlattr.StringLen(string(a)) }

func (a InfoKind) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

// InfoSlaveKind is IFLA_INFO_SLAVE_KIND, the controlling link's type.
type InfoSlaveKind string

func (InfoSlaveKind) Type() uint16    { return unix.IFLA_INFO_SLAVE_KIND }
func (a InfoSlaveKind) ValueLen() int { return nlattr.StringLen(string(a)) }

func (a InfoSlaveKind) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

// parseLinkInfo decodes the nested set. Kind-specific payloads
// (IFLA_INFO_DATA and friends) vary per link type and are preserved raw;
// only the kind names get typed values.
func parseLinkInfo(typ uint16, v []byte) (nlattr.Attr, error) {
	li := LinkInfo{Typ: typ}
	err := nlattr.Walk(v, func(ityp uint16, value []byte) error {
		switch ityp {
		case unix.IFLA_INFO_KIND:
			li.Attrs = append(li.Attrs, InfoKind(nlattr.String(value)))
		case unix.IFLA_INFO_SLAVE_KIND:
			li.Attrs = append(li.Attrs, InfoSlaveKind(nlattr.String(value)))
		default:
			li.Attrs = append(li.Attrs, nlattr.Fallback(ityp, value))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("IFLA_LINKINFO: %w", err)
	}
	return li, nil
}

// PropList is the nested IFLA_PROP_LIST attribute set carrying the
// link's alternative names. Typ works as in LinkInfo.
type PropList struct {
	Typ   uint16
	Attrs []nlattr.Attr
}

func (a PropList) Type() uint16 {
	if a.Typ != 0 {
		return a.Typ
	}
	return unix.IFLA_PROP_LIST
}

func (a PropList) ValueLen() int { return nlattr.EncodedLen(a.Attrs) }

func (a PropList) EncodeValue(b []byte) error {
	return nlattr.Encode(a.Attrs, b)
}

func parsePropList(typ uint16, v []byte) (nlattr.Attr, error) {
	pl := PropList{Typ: typ}
	err := nlattr.Walk(v, func(ityp uint16, value []byte) error {
		switch ityp {
		case unix.IFLA_ALT_IFNAME:
			pl.Attrs = append(pl.Attrs, AltName(nlattr.String(value)))
		default:
			pl.Attrs = append(pl.Attrs, nlattr.Fallback(ityp, value))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("IFLA_PROP_LIST: %w", err)
	}
	return pl, nil
}
