// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package link

import (
	"fmt"
	"net"
	"slices"

	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/nlattr"
)

// Typed IFLA_* attributes. Each type carries one kind; anything not
// listed here decodes as nlattr.Raw and re-encodes untouched.

// Name is IFLA_IFNAME, the interface name.
type Name string

func (Name) Type() uint16    { return unix.IFLA_IFNAME }
func (a Name) ValueLen() int { return nlattr.StringLen(string(a)) }

func (a Name) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

// QDisc is IFLA_QDISC, the name of the root queueing discipline.
type QDisc string

func (QDisc) Type() uint16    { return unix.IFLA_QDISC }
func (a QDisc) ValueLen() int { return nlattr.StringLen(string(a)) }

func (a QDisc) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

// IfAlias is IFLA_IFALIAS, the SNMP ifAlias string.
type IfAlias string

func (IfAlias) Type() uint16    { return unix.IFLA_IFALIAS }
func (a IfAlias) ValueLen() int { return nlattr.StringLen(string(a)) }

func (a IfAlias) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

// AltName is IFLA_ALT_IFNAME, one alternative interface name. It
// appears at the top level in RTM_NEWLINKPROP/RTM_DELLINKPROP requests
// and inside PropList in dumps.
type AltName string

func (AltName) Type() uint16    { return unix.IFLA_ALT_IFNAME }
func (a AltName) ValueLen() int { return nlattr.StringLen(string(a)) }

func (a AltName) EncodeValue(b []byte) error {
	nlattr.PutString(b, string(a))
	return nil
}

// Address is IFLA_ADDRESS, the hardware address.
type Address net.HardwareAddr

func (Address) Type() uint16    { return unix.IFLA_ADDRESS }
func (a Address) ValueLen() int { return len(a) }

func (a Address) EncodeValue(b []byte) error {
	copy(b, a)
	return nil
}

// Broadcast is IFLA_BROADCAST, the hardware broadcast address.
type Broadcast net.HardwareAddr

func (Broadcast) Type() uint16    { return unix.IFLA_BROADCAST }
func (a Broadcast) ValueLen() int { return len(a) }

func (a Broadcast) EncodeValue(b []byte) error {
	copy(b, a)
	return nil
}

// MTU is IFLA_MTU.
type MTU uint32

// LinkIndex is IFLA_LINK, the underlying device for stacked links.
type LinkIndex uint32

// Master is IFLA_MASTER, the controlling device (bridge, bond, ...).
type Master uint32

// TxQueueLen is IFLA_TXQLEN.
type TxQueueLen uint32

// Group is IFLA_GROUP, the device group.
type Group uint32

func (MTU) Type() uint16        { return unix.IFLA_MTU }
func (LinkIndex) Type() uint16  { return unix.IFLA_LINK }
func (Master) Type() uint16     { return unix.IFLA_MASTER }
func (TxQueueLen) Type() uint16 { return unix.IFLA_TXQLEN }
func (Group) Type() uint16      { return unix.IFLA_GROUP }

func (MTU) ValueLen() int        { return 4 }
func (LinkIndex) ValueLen() int  { return 4 }
func (Master) ValueLen() int     { return 4 }
func (TxQueueLen) ValueLen() int { return 4 }
func (Group) ValueLen() int      { return 4 }

func (a MTU) EncodeValue(b []byte) error        { nlenc.PutUint32(b, uint32(a)); return nil }
func (a LinkIndex) EncodeValue(b []byte) error  { nlenc.PutUint32(b, uint32(a)); return nil }
func (a Master) EncodeValue(b []byte) error     { nlenc.PutUint32(b, uint32(a)); return nil }
func (a TxQueueLen) EncodeValue(b []byte) error { nlenc.PutUint32(b, uint32(a)); return nil }
func (a Group) EncodeValue(b []byte) error      { nlenc.PutUint32(b, uint32(a)); return nil }

// LinkMode is IFLA_LINKMODE (IF_LINK_MODE_*).
type LinkMode uint8

func (LinkMode) Type() uint16    { return unix.IFLA_LINKMODE }
func (a LinkMode) ValueLen() int { return 1 }

func (a LinkMode) EncodeValue(b []byte) error {
	b[0] = byte(a)
	return nil
}

func parseAttr(typ uint16, v []byte) (nlattr.Attr, error) {
	switch typ {
	case unix.IFLA_IFNAME:
		return Name(nlattr.String(v)), nil
	case unix.IFLA_QDISC:
		return QDisc(nlattr.String(v)), nil
	case unix.IFLA_IFALIAS:
		return IfAlias(nlattr.String(v)), nil
	case unix.IFLA_ALT_IFNAME:
		return AltName(nlattr.String(v)), nil
	case unix.IFLA_ADDRESS:
		return Address(slices.Clone(v)), nil
	case unix.IFLA_BROADCAST:
		return Broadcast(slices.Clone(v)), nil
	case unix.IFLA_MTU:
		u, err := nlattr.Uint32(v)
		return MTU(u), wrapAttrErr("IFLA_MTU", err)
	case unix.IFLA_LINK:
		u, err := nlattr.Uint32(v)
		return LinkIndex(u), wrapAttrErr("IFLA_LINK", err)
	case unix.IFLA_MASTER:
		u, err := nlattr.Uint32(v)
		return Master(u), wrapAttrErr("IFLA_MASTER", err)
	case unix.IFLA_TXQLEN:
		u, err := nlattr.Uint32(v)
		return TxQueueLen(u), wrapAttrErr("IFLA_TXQLEN", err)
	case unix.IFLA_GROUP:
		u, err := nlattr.Uint32(v)
		return Group(u), wrapAttrErr("IFLA_GROUP", err)
	case unix.IFLA_OPERSTATE:
		u, err := nlattr.Uint8(v)
		return OperState(u), wrapAttrErr("IFLA_OPERSTATE", err)
	case unix.IFLA_LINKMODE:
		u, err := nlattr.Uint8(v)
		return LinkMode(u), wrapAttrErr("IFLA_LINKMODE", err)
	case unix.IFLA_LINKINFO, unix.IFLA_LINKINFO | unix.NLA_F_NESTED:
		return parseLinkInfo(typ, v)
	case unix.IFLA_PROP_LIST, unix.IFLA_PROP_LIST | unix.NLA_F_NESTED:
		return parsePropList(typ, v)
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
