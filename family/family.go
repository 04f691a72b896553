// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package family defines the socket address-family byte carried at the
// front of every route-netlink object header.
//
// Family is an open-coded value: the named constants cover every family
// the kernel defines today, but a byte outside that set is not an error.
// Family(b) is total over all 256 byte values and uint8(Family(b)) == b
// always holds, so unrecognized families survive a decode→encode round
// trip untouched.
package family

import (
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/nlsym"
)

// Family is a socket address family (AF_*).
type Family uint8

const (
	Unspec     Family = unix.AF_UNSPEC
	Unix       Family = unix.AF_UNIX
	Local      Family = unix.AF_LOCAL // alias of Unix
	Inet       Family = unix.AF_INET
	AX25       Family = unix.AF_AX25
	IPX        Family = unix.AF_IPX
	AppleTalk  Family = unix.AF_APPLETALK
	NetROM     Family = unix.AF_NETROM
	Bridge     Family = unix.AF_BRIDGE
	ATMPVC     Family = unix.AF_ATMPVC
	X25        Family = unix.AF_X25
	Inet6      Family = unix.AF_INET6
	Rose       Family = unix.AF_ROSE
	DECnet     Family = unix.AF_DECnet
	NetBEUI    Family = unix.AF_NETBEUI
	Security   Family = unix.AF_SECURITY
	Key        Family = unix.AF_KEY
	Netlink    Family = unix.AF_NETLINK
	Route      Family = unix.AF_ROUTE // alias of Netlink
	Packet     Family = unix.AF_PACKET
	Ash        Family = unix.AF_ASH
	Econet     Family = unix.AF_ECONET
	ATMSVC     Family = unix.AF_ATMSVC
	RDS        Family = unix.AF_RDS
	SNA        Family = unix.AF_SNA
	IrDA       Family = unix.AF_IRDA
	PPPoX      Family = unix.AF_PPPOX
	Wanpipe    Family = unix.AF_WANPIPE
	LLC        Family = unix.AF_LLC
	IB         Family = unix.AF_IB
	MPLS       Family = unix.AF_MPLS
	CAN        Family = unix.AF_CAN
	TIPC       Family = unix.AF_TIPC
	Bluetooth  Family = unix.AF_BLUETOOTH
	IUCV       Family = unix.AF_IUCV
	RxRPC      Family = unix.AF_RXRPC
	ISDN       Family = unix.AF_ISDN
	Phonet     Family = unix.AF_PHONET
	IEEE802154 Family = unix.AF_IEEE802154
	CAIF       Family = unix.AF_CAIF
	Alg        Family = unix.AF_ALG
	NFC        Family = unix.AF_NFC
	VSock      Family = unix.AF_VSOCK
	KCM        Family = unix.AF_KCM
	QIPCRTR    Family = unix.AF_QIPCRTR
	SMC        Family = unix.AF_SMC
	XDP        Family = unix.AF_XDP
	MCTP       Family = unix.AF_MCTP
)

// names holds the canonical name for each known family. The aliased
// values (Unix/Local, Netlink/Route) report the kernel's primary name.
var names = map[Family]string{
	Unspec:     "AF_UNSPEC",
	Unix:       "AF_UNIX",
	Inet:       "AF_INET",
	AX25:       "AF_AX25",
	IPX:        "AF_IPX",
	AppleTalk:  "AF_APPLETALK",
	NetROM:     "AF_NETROM",
	Bridge:     "AF_BRIDGE",
	ATMPVC:     "AF_ATMPVC",
	X25:        "AF_X25",
	Inet6:      "AF_INET6",
	Rose:       "AF_ROSE",
	DECnet:     "AF_DECnet",
	NetBEUI:    "AF_NETBEUI",
	Security:   "AF_SECURITY",
	Key:        "AF_KEY",
	Netlink:    "AF_NETLINK",
	Packet:     "AF_PACKET",
	Ash:        "AF_ASH",
	Econet:     "AF_ECONET",
	ATMSVC:     "AF_ATMSVC",
	RDS:        "AF_RDS",
	SNA:        "AF_SNA",
	IrDA:       "AF_IRDA",
	PPPoX:      "AF_PPPOX",
	Wanpipe:    "AF_WANPIPE",
	LLC:        "AF_LLC",
	IB:         "AF_IB",
	MPLS:       "AF_MPLS",
	CAN:        "AF_CAN",
	TIPC:       "AF_TIPC",
	Bluetooth:  "AF_BLUETOOTH",
	IUCV:       "AF_IUCV",
	RxRPC:      "AF_RXRPC",
	ISDN:       "AF_ISDN",
	Phonet:     "AF_PHONET",
	IEEE802154: "AF_IEEE802154",
	CAIF:       "AF_CAIF",
	Alg:        "AF_ALG",
	NFC:        "AF_NFC",
	VSock:      "AF_VSOCK",
	KCM:        "AF_KCM",
	QIPCRTR:    "AF_QIPCRTR",
	SMC:        "AF_SMC",
	XDP:        "AF_XDP",
	MCTP:       "AF_MCTP",
}

func (f Family) String() string {
	return nlsym.Name(names, "af", f)
}

// Known reports whether f is one of the named families.
func (f Family) Known() bool {
	_, ok := names[f]
	return ok
}
