// Copyright (c) Routewire Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command rtnldump asks the kernel for its link, address, and route
// tables and prints the decoded replies.
package main

import (
	"flag"
	"log"

	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"

	"github.com/routewire/rtnl"
	"github.com/routewire/rtnl/addr"
	"github.com/routewire/rtnl/link"
	"github.com/routewire/rtnl/route"
)

var (
	links  = flag.Bool("links", true, "dump links")
	addrs  = flag.Bool("addrs", true, "dump addresses")
	routes = flag.Bool("routes", false, "dump routes")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	conn, err := netlink.Dial(unix.NETLINK_ROUTE, nil)
	if err != nil {
		log.Fatalf("dialing rtnetlink: %v", err)
	}
	defer conn.Close()

	if *links {
		dump(conn, rtnl.GetLink(new(link.Message)))
	}
	if *addrs {
		dump(conn, rtnl.GetAddress(new(addr.Message)))
	}
	if *routes {
		dump(conn, rtnl.GetRoute(new(route.Message)))
	}
}

func dump(conn *netlink.Conn, req rtnl.Message) {
	nm, err := rtnl.Pack(req, netlink.Request|netlink.Dump)
	if err != nil {
		log.Fatalf("%s: pack: %v", rtnl.TypeName(req.Type()), err)
	}
	replies, err := conn.Execute(nm)
	if err != nil {
		log.Fatalf("%s: %v", rtnl.TypeName(req.Type()), err)
	}
	for _, reply := range replies {
		m, err := rtnl.Unpack(reply)
		if err != nil {
			log.Printf("%s: decode failed: %v", rtnl.TypeName(uint16(reply.Header.Type)), err)
			continue
		}
		log.Println(rtnl.Summary(m))
	}
}
