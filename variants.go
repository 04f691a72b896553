// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rtnl

import (
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/addr"
	"github.com/routewire/rtnl/link"
	"github.com/routewire/rtnl/neigh"
	"github.com/routewire/rtnl/neightbl"
	"github.com/routewire/rtnl/nsid"
	"github.com/routewire/rtnl/prefix"
	"github.com/routewire/rtnl/route"
	"github.com/routewire/rtnl/rule"
	"github.com/routewire/rtnl/tc"
)

// Constructors. Each pairs an operation code with the payload type that
// code routes to, so a constructed Message always satisfies the same
// code/payload pairing Decode produces.

func NewLink(msg *link.Message) Message     { return Message{unix.RTM_NEWLINK, msg} }
func DelLink(msg *link.Message) Message     { return Message{unix.RTM_DELLINK, msg} }
func GetLink(msg *link.Message) Message     { return Message{unix.RTM_GETLINK, msg} }
func SetLink(msg *link.Message) Message     { return Message{unix.RTM_SETLINK, msg} }
func NewLinkProp(msg *link.Message) Message { return Message{unix.RTM_NEWLINKPROP, msg} }
func DelLinkProp(msg *link.Message) Message { return Message{unix.RTM_DELLINKPROP, msg} }

func NewAddress(msg *addr.Message) Message { return Message{unix.RTM_NEWADDR, msg} }
func DelAddress(msg *addr.Message) Message { return Message{unix.RTM_DELADDR, msg} }
func GetAddress(msg *addr.Message) Message { return Message{unix.RTM_GETADDR, msg} }

func NewRoute(msg *route.Message) Message { return Message{unix.RTM_NEWROUTE, msg} }
func DelRoute(msg *route.Message) Message { return Message{unix.RTM_DELROUTE, msg} }
func GetRoute(msg *route.Message) Message { return Message{unix.RTM_GETROUTE, msg} }

func NewNeigh(msg *neigh.Message) Message { return Message{unix.RTM_NEWNEIGH, msg} }
func DelNeigh(msg *neigh.Message) Message { return Message{unix.RTM_DELNEIGH, msg} }
func GetNeigh(msg *neigh.Message) Message { return Message{unix.RTM_GETNEIGH, msg} }

func NewRule(msg *rule.Message) Message { return Message{unix.RTM_NEWRULE, msg} }
func DelRule(msg *rule.Message) Message { return Message{unix.RTM_DELRULE, msg} }
func GetRule(msg *rule.Message) Message { return Message{unix.RTM_GETRULE, msg} }

func NewQdisc(msg *tc.Message) Message { return Message{unix.RTM_NEWQDISC, msg} }
func DelQdisc(msg *tc.Message) Message { return Message{unix.RTM_DELQDISC, msg} }
func GetQdisc(msg *tc.Message) Message { return Message{unix.RTM_GETQDISC, msg} }

func NewTClass(msg *tc.Message) Message { return Message{unix.RTM_NEWTCLASS, msg} }
func DelTClass(msg *tc.Message) Message { return Message{unix.RTM_DELTCLASS, msg} }
func GetTClass(msg *tc.Message) Message { return Message{unix.RTM_GETTCLASS, msg} }

func NewTFilter(msg *tc.Message) Message { return Message{unix.RTM_NEWTFILTER, msg} }
func DelTFilter(msg *tc.Message) Message { return Message{unix.RTM_DELTFILTER, msg} }
func GetTFilter(msg *tc.Message) Message { return Message{unix.RTM_GETTFILTER, msg} }

func NewChain(msg *tc.Message) Message { return Message{unix.RTM_NEWCHAIN, msg} }
func DelChain(msg *tc.Message) Message { return Message{unix.RTM_DELCHAIN, msg} }
func GetChain(msg *tc.Message) Message { return Message{unix.RTM_GETCHAIN, msg} }

func NewPrefix(msg *prefix.Message) Message { return Message{unix.RTM_NEWPREFIX, msg} }

func NewNeighTbl(msg *neightbl.Message) Message { return Message{unix.RTM_NEWNEIGHTBL, msg} }
func GetNeighTbl(msg *neightbl.Message) Message { return Message{unix.RTM_GETNEIGHTBL, msg} }
func SetNeighTbl(msg *neightbl.Message) Message { return Message{unix.RTM_SETNEIGHTBL, msg} }

func NewNSID(msg *nsid.Message) Message { return Message{unix.RTM_NEWNSID, msg} }
func DelNSID(msg *nsid.Message) Message { return Message{unix.RTM_DELNSID, msg} }
func GetNSID(msg *nsid.Message) Message { return Message{unix.RTM_GETNSID, msg} }

// Predicates, one per operation. Plain tag comparisons so that cheap
// type tests don't require unpacking the payload.

func (m Message) IsNewLink() bool     { return m.typ == unix.RTM_NEWLINK }
func (m Message) IsDelLink() bool     { return m.typ == unix.RTM_DELLINK }
func (m Message) IsGetLink() bool     { return m.typ == unix.RTM_GETLINK }
func (m Message) IsSetLink() bool     { return m.typ == unix.RTM_SETLINK }
func (m Message) IsNewLinkProp() bool { return m.typ == unix.RTM_NEWLINKPROP }
func (m Message) IsDelLinkProp() bool { return m.typ == unix.RTM_DELLINKPROP }

func (m Message) IsNewAddress() bool { return m.typ == unix.RTM_NEWADDR }
func (m Message) IsDelAddress() bool { return m.typ == unix.RTM_DELADDR }
func (m Message) IsGetAddress() bool { return m.typ == unix.RTM_GETADDR }

func (m Message) IsNewRoute() bool { return m.typ == unix.RTM_NEWROUTE }
func (m Message) IsDelRoute() bool { return m.typ == unix.RTM_DELROUTE }
func (m Message) IsGetRoute() bool { return m.typ == unix.RTM_GETROUTE }

func (m Message) IsNewNeigh() bool { return m.typ == unix.RTM_NEWNEIGH }
func (m Message) IsDelNeigh() bool { return m.typ == unix.RTM_DELNEIGH }
func (m Message) IsGetNeigh() bool { return m.typ == unix.RTM_GETNEIGH }

func (m Message) IsNewRule() bool { return m.typ == unix.RTM_NEWRULE }
func (m Message) IsDelRule() bool { return m.typ == unix.RTM_DELRULE }
func (m Message) IsGetRule() bool { return m.typ == unix.RTM_GETRULE }

func (m Message) IsNewQdisc() bool { return m.typ == unix.RTM_NEWQDISC }
func (m Message) IsDelQdisc() bool { return m.typ == unix.RTM_DELQDISC }
func (m Message) IsGetQdisc() bool { return m.typ == unix.RTM_GETQDISC }

func (m Message) IsNewTClass() bool { return m.typ == unix.RTM_NEWTCLASS }
func (m Message) IsDelTClass() bool { return m.typ == unix.RTM_DELTCLASS }
func (m Message) IsGetTClass() bool { return m.typ == unix.RTM_GETTCLASS }

func (m Message) IsNewTFilter() bool { return m.typ == unix.RTM_NEWTFILTER }
func (m Message) IsDelTFilter() bool { return m.typ == unix.RTM_DELTFILTER }
func (m Message) IsGetTFilter() bool { return m.typ == unix.RTM_GETTFILTER }

func (m Message) IsNewChain() bool { return m.typ == unix.RTM_NEWCHAIN }
func (m Message) IsDelChain() bool { return m.typ == unix.RTM_DELCHAIN }
func (m Message) IsGetChain() bool { return m.typ == unix.RTM_GETCHAIN }

func (m Message) IsNewPrefix() bool { return m.typ == unix.RTM_NEWPREFIX }

func (m Message) IsNewNeighTbl() bool { return m.typ == unix.RTM_NEWNEIGHTBL }
func (m Message) IsGetNeighTbl() bool { return m.typ == unix.RTM_GETNEIGHTBL }
func (m Message) IsSetNeighTbl() bool { return m.typ == unix.RTM_SETNEIGHTBL }

func (m Message) IsNewNSID() bool { return m.typ == unix.RTM_NEWNSID }
func (m Message) IsDelNSID() bool { return m.typ == unix.RTM_DELNSID }
func (m Message) IsGetNSID() bool { return m.typ == unix.RTM_GETNSID }

// Accessors, one per payload kind.

// Link returns the payload of a link-family message.
func (m Message) Link() (*link.Message, bool) {
	v, ok := m.obj.(*link.Message)
	return v, ok
}

// Address returns the payload of an address-family message.
func (m Message) Address() (*addr.Message, bool) {
	v, ok := m.obj.(*addr.Message)
	return v, ok
}

// Route returns the payload of a route-family message.
func (m Message) Route() (*route.Message, bool) {
	v, ok := m.obj.(*route.Message)
	return v, ok
}

// Neigh returns the payload of a neighbor-family message.
func (m Message) Neigh() (*neigh.Message, bool) {
	v, ok := m.obj.(*neigh.Message)
	return v, ok
}

// Rule returns the payload of a rule-family message.
func (m Message) Rule() (*rule.Message, bool) {
	v, ok := m.obj.(*rule.Message)
	return v, ok
}

// TC returns the payload of a qdisc, class, filter, or chain message.
func (m Message) TC() (*tc.Message, bool) {
	v, ok := m.obj.(*tc.Message)
	return v, ok
}

// Prefix returns the payload of a prefix message.
func (m Message) Prefix() (*prefix.Message, bool) {
	v, ok := m.obj.(*prefix.Message)
	return v, ok
}

// NeighTbl returns the payload of a neighbor-table message.
func (m Message) NeighTbl() (*neightbl.Message, bool) {
	v, ok := m.obj.(*neightbl.Message)
	return v, ok
}

// NSID returns the payload of a namespace-id message.
func (m Message) NSID() (*nsid.Message, bool) {
	v, ok := m.obj.(*nsid.Message)
	return v, ok
}
