// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rtnl

import (
	"github.com/mdlayher/netlink"
)

// Pack wraps m in a netlink.Message ready for a NETLINK_ROUTE
// connection. The transport fills in length, sequence, and port id.
func Pack(m Message, flags netlink.HeaderFlags) (netlink.Message, error) {
	data, err := m.MarshalBinary()
	if err != nil {
		return netlink.Message{}, err
	}
	return netlink.Message{
		Header: netlink.Header{
			Type:  netlink.HeaderType(m.Type()),
			Flags: flags,
		},
		Data: data,
	}, nil
}

// Unpack decodes the payload of a received netlink.Message. The caller
// is expected to have filtered out the netlink control types (done,
// error, noop); their type codes are not in the route registry and fail
// with ErrUnknownType.
func Unpack(nm netlink.Message) (Message, error) {
	return Decode(uint16(nm.Header.Type), nm.Data)
}
