// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package link

import (
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl/nlsym"
)

// OperState is IFLA_OPERSTATE, the RFC 2863 operational state. Like all
// wire vocabularies here it is open-coded: unknown bytes round-trip.
type OperState uint8

const (
	OperUnknown        OperState = 0
	OperNotPresent     OperState = 1
	OperDown           OperState = 2
	OperLowerLayerDown OperState = 3
	OperTesting        OperState = 4
	OperDormant        OperState = 5
	OperUp             OperState = 6
)

var operStateNames = map[OperState]string{
	OperUnknown:        "unknown",
	OperNotPresent:     "not-present",
	OperDown:           "down",
	OperLowerLayerDown: "lower-layer-down",
	OperTesting:        "testing",
	OperDormant:        "dormant",
	OperUp:             "up",
}

func (s OperState) String() string {
	return nlsym.Name(operStateNames, "operstate", s)
}

func (OperState) Type() uint16    { return unix.IFLA_OPERSTATE }
func (s OperState) ValueLen() int { return 1 }

func (s OperState) EncodeValue(b []byte) error {
	b[0] = byte(s)
	return nil
}
