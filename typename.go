// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rtnl

import (
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/nlsym"
)

// typeNames is the route-domain registry: every RTM code Decode routes,
// by its kernel name. Codes absent here are rejected by Decode.
var typeNames = map[uint16]string{
	unix.RTM_NEWLINK:     "RTM_NEWLINK",
	unix.RTM_DELLINK:     "RTM_DELLINK",
	unix.RTM_GETLINK:     "RTM_GETLINK",
	unix.RTM_SETLINK:     "RTM_SETLINK",
	unix.RTM_NEWADDR:     "RTM_NEWADDR",
	unix.RTM_DELADDR:     "RTM_DELADDR",
	unix.RTM_GETADDR:     "RTM_GETADDR",
	unix.RTM_NEWROUTE:    "RTM_NEWROUTE",
	unix.RTM_DELROUTE:    "RTM_DELROUTE",
	unix.RTM_GETROUTE:    "RTM_GETROUTE",
	unix.RTM_NEWNEIGH:    "RTM_NEWNEIGH",
	unix.RTM_DELNEIGH:    "RTM_DELNEIGH",
	unix.RTM_GETNEIGH:    "RTM_GETNEIGH",
	unix.RTM_NEWRULE:     "RTM_NEWRULE",
	unix.RTM_DELRULE:     "RTM_DELRULE",
	unix.RTM_GETRULE:     "RTM_GETRULE",
	unix.RTM_NEWQDISC:    "RTM_NEWQDISC",
	unix.RTM_DELQDISC:    "RTM_DELQDISC",
	unix.RTM_GETQDISC:    "RTM_GETQDISC",
	unix.RTM_NEWTCLASS:   "RTM_NEWTCLASS",
	unix.RTM_DELTCLASS:   "RTM_DELTCLASS",
	unix.RTM_GETTCLASS:   "RTM_GETTCLASS",
	unix.RTM_NEWTFILTER:  "RTM_NEWTFILTER",
	unix.RTM_DELTFILTER:  "RTM_DELTFILTER",
	unix.RTM_GETTFILTER:  "RTM_GETTFILTER",
	unix.RTM_NEWPREFIX:   "RTM_NEWPREFIX",
	unix.RTM_NEWNEIGHTBL: "RTM_NEWNEIGHTBL",
	unix.RTM_GETNEIGHTBL: "RTM_GETNEIGHTBL",
	unix.RTM_SETNEIGHTBL: "RTM_SETNEIGHTBL",
	unix.RTM_NEWNSID:     "RTM_NEWNSID",
	unix.RTM_DELNSID:     "RTM_DELNSID",
	unix.RTM_GETNSID:     "RTM_GETNSID",
	unix.RTM_NEWCHAIN:    "RTM_NEWCHAIN",
	unix.RTM_DELCHAIN:    "RTM_DELCHAIN",
	unix.RTM_GETCHAIN:    "RTM_GETCHAIN",
	unix.RTM_NEWLINKPROP: "RTM_NEWLINKPROP",
	unix.RTM_DELLINKPROP: "RTM_DELLINKPROP",
}

// TypeName returns the kernel name of an RTM code ("RTM_NEWLINK"), or a
// stable "rtm-0xNN" form for codes outside the registry.
func TypeName(typ uint16) string {
	return nlsym.Name(typeNames, "rtm", typ)
}

// Registered reports whether Decode handles the given type code.
func Registered(typ uint16) bool {
	_, ok := typeNames[typ]
	return ok
}
