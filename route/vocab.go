// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package route

import (
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/nlsym"
)

// The rtmsg header packs three open-coded byte vocabularies; unknown
// bytes in any of them round-trip unchanged.

// Protocol is the route origin (RTPROT_*).
type Protocol uint8

const (
	ProtoUnspec   Protocol = unix.RTPROT_UNSPEC
	ProtoRedirect Protocol = unix.RTPROT_REDIRECT
	ProtoKernel   Protocol = unix.RTPROT_KERNEL
	ProtoBoot     Protocol = unix.RTPROT_BOOT
	ProtoStatic   Protocol = unix.RTPROT_STATIC
	ProtoRA       Protocol = unix.RTPROT_RA
	ProtoDHCP     Protocol = unix.RTPROT_DHCP
	ProtoBGP      Protocol = unix.RTPROT_BGP
)

var protocolNames = map[Protocol]string{
	ProtoUnspec:   "unspec",
	ProtoRedirect: "redirect",
	ProtoKernel:   "kernel",
	ProtoBoot:     "boot",
	ProtoStatic:   "static",
	ProtoRA:       "ra",
	ProtoDHCP:     "dhcp",
	ProtoBGP:      "bgp",
}

func (p Protocol) String() string {
	return nlsym.Name(protocolNames, "rtprot", p)
}

// Scope is the route scope (RT_SCOPE_*).
type Scope uint8

const (
	ScopeUniverse Scope = unix.RT_SCOPE_UNIVERSE
	ScopeSite     Scope = unix.RT_SCOPE_SITE
	ScopeLink     Scope = unix.RT_SCOPE_LINK
	ScopeHost     Scope = unix.RT_SCOPE_HOST
	ScopeNowhere  Scope = unix.RT_SCOPE_NOWHERE
)

var scopeNames = map[Scope]string{
	ScopeUniverse: "universe",
	ScopeSite:     "site",
	ScopeLink:     "link",
	ScopeHost:     "host",
	ScopeNowhere:  "nowhere",
}

func (s Scope) String() string {
	return nlsym.Name(scopeNames, "rtscope", s)
}

// Kind is the route type (RTN_*).
type Kind uint8

const (
	KindUnspec      Kind = unix.RTN_UNSPEC
	KindUnicast     Kind = unix.RTN_UNICAST
	KindLocal       Kind = unix.RTN_LOCAL
	KindBroadcast   Kind = unix.RTN_BROADCAST
	KindAnycast     Kind = unix.RTN_ANYCAST
	KindMulticast   Kind = unix.RTN_MULTICAST
	KindBlackhole   Kind = unix.RTN_BLACKHOLE
	KindUnreachable Kind = unix.RTN_UNREACHABLE
	KindProhibit    Kind = unix.RTN_PROHIBIT
	KindThrow       Kind = unix.RTN_THROW
	KindNAT         Kind = unix.RTN_NAT
	KindXResolve    Kind = unix.RTN_XRESOLVE
)

var kindNames = map[Kind]string{
	KindUnspec:      "unspec",
	KindUnicast:     "unicast",
	KindLocal:       "local",
	KindBroadcast:   "broadcast",
	KindAnycast:     "anycast",
	KindMulticast:   "multicast",
	KindBlackhole:   "blackhole",
	KindUnreachable: "unreachable",
	KindProhibit:    "prohibit",
	KindThrow:       "throw",
	KindNAT:         "nat",
	KindXResolve:    "xresolve",
}

func (k Kind) String() string {
	return nlsym.Name(kindNames, "rtn", k)
}
