// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rtnl

import (
	"fmt"
)

// Summary returns a short one-line description of m for logging.
func Summary(m Message) string {
	name := TypeName(m.Type())
	if m.obj == nil {
		return name + " (empty)"
	}
	if lm, ok := m.Link(); ok {
		return fmt.Sprintf("%s family=%v index=%d flags=0x%x attrs=%d",
			name, lm.Header.Family, lm.Header.Index, lm.Header.Flags, len(lm.Attrs))
	}
	if am, ok := m.Address(); ok {
		return fmt.Sprintf("%s family=%v index=%d prefixlen=%d attrs=%d",
			name, am.Header.Family, am.Header.Index, am.Header.PrefixLen, len(am.Attrs))
	}
	if rm, ok := m.Route(); ok {
		return fmt.Sprintf("%s family=%v table=%d proto=%v scope=%v kind=%v attrs=%d",
			name, rm.Header.Family, rm.Header.Table, rm.Header.Protocol,
			rm.Header.Scope, rm.Header.Kind, len(rm.Attrs))
	}
	if nm, ok := m.Neigh(); ok {
		return fmt.Sprintf("%s family=%v index=%d state=0x%x attrs=%d",
			name, nm.Header.Family, nm.Header.Index, nm.Header.State, len(nm.Attrs))
	}
	if tm, ok := m.TC(); ok {
		return fmt.Sprintf("%s index=%d handle=0x%x parent=0x%x attrs=%d",
			name, tm.Header.Index, tm.Header.Handle, tm.Header.Parent, len(tm.Attrs))
	}
	return fmt.Sprintf("%s len=%d", name, m.EncodedLen())
}
