// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

package neightbl

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/routewire/rtnl/family"
	"github.com/routewire/rtnl/nlattr"
)

func TestRoundTrip(t *testing.T) {
	in := Message{
		Header: Header{Family: family.Inet},
		Attrs: []nlattr.Attr{
			Name("arp_cache"),
			Threshold1(128),
			Threshold2(512),
			Threshold3(1024),
			GCInterval(30000),
			nlattr.Raw{Typ: 6, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}}, // NDTA_PARMS blob
		},
	}
	b := make([]byte, in.EncodedLen())
	if err := in.Encode(b); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var out Message
	if err := out.Decode(b); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}
