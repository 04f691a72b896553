// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command rtnlmon subscribes to the rtnetlink multicast groups and
// prints a line per kernel notification.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl"
)

var (
	links   = flag.Bool("links", true, "watch link changes")
	addrs   = flag.Bool("addrs", true, "watch IPv4/IPv6 address changes")
	routes  = flag.Bool("routes", true, "watch IPv4/IPv6 route changes")
	neighs  = flag.Bool("neighs", false, "watch neighbor changes")
	tcs     = flag.Bool("tc", false, "watch qdisc/filter changes")
	verbose = flag.Bool("verbose", false, "print payload bytes of messages that fail to decode")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	var groups uint32
	if *links {
		groups |= unix.RTMGRP_LINK
	}
	if *addrs {
		groups |= unix.RTMGRP_IPV4_IFADDR | unix.RTMGRP_IPV6_IFADDR
	}
	if *routes {
		groups |= unix.RTMGRP_IPV4_ROUTE | unix.RTMGRP_IPV6_ROUTE
	}
	if *neighs {
		groups |= unix.RTMGRP_NEIGH
	}
	if *tcs {
		groups |= unix.RTMGRP_TC
	}
	if groups == 0 {
		log.Fatalf("nothing to watch; enable at least one group")
	}

	conn, err := netlink.Dial(unix.NETLINK_ROUTE, &netlink.Config{Groups: groups})
	if err != nil {
		log.Fatalf("dialing rtnetlink: %v", err)
	}
	defer conn.Close()

	for {
		msgs, err := conn.Receive()
		if err != nil {
			log.Fatalf("receive: %v", err)
		}
		for _, nm := range msgs {
			m, err := rtnl.Unpack(nm)
			if err != nil {
				if errors.Is(err, rtnl.ErrUnknownType) {
					log.Printf("skipping %s", rtnl.TypeName(uint16(nm.Header.Type)))
					continue
				}
				if *verbose {
					log.Printf("%s: decode failed: %v; payload % x",
						rtnl.TypeName(uint16(nm.Header.Type)), err, nm.Data)
				} else {
					log.Printf("%s: decode failed: %v",
						rtnl.TypeName(uint16(nm.Header.Type)), err)
				}
				continue
			}
			log.Println(rtnl.Summary(m))
		}
	}
}
