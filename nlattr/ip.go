// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package nlattr

import (
	"fmt"
	"net/netip"
)

// IP address attribute values carry either a 4-byte IPv4 or a 16-byte
// IPv6 address; every object codec with address-shaped kinds shares
// these.

// IP decodes an address attribute value.
func IP(v []byte) (netip.Addr, error) {
	a, ok := netip.AddrFromSlice(v)
	if !ok {
		return netip.Addr{}, fmt.Errorf("address attribute value: %d bytes, want 4 or 16", len(v))
	}
	return a, nil
}

// IPLen returns the encoded length of a: 4 or 16 bytes.
func IPLen(a netip.Addr) int {
	if a.Is4() {
		return 4
	}
	return 16
}

// PutIP writes a into b, which holds IPLen(a) bytes.
func PutIP(b []byte, a netip.Addr) error {
	if !a.IsValid() {
		return fmt.Errorf("address attribute value: zero netip.Addr")
	}
	copy(b, a.AsSlice())
	return nil
}
