// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package nlsym turns raw netlink wire constants into symbolic names.
//
// Every small fixed vocabulary in the route protocol (address families,
// message types, operational states, route scopes, ...) is an open-coded
// value: a named integer type whose known values have names and whose
// unknown values must still round-trip. The name tables live with their
// types; this package is the one shared lookup so the formatting isn't
// reinvented per vocabulary.
package nlsym

import "fmt"

// Name returns the symbolic name of v from names, or a stable
// "prefix-0xNN" form for values the table doesn't know.
func Name[T ~uint8 | ~uint16 | ~uint32](names map[T]string, prefix string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return fmt.Sprintf("%s-0x%02x", prefix, uint32(v))
}
