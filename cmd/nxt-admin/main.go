// Package main is a command line tool for node admin actions.
package main

import "github.com/ben-haim/Nxt2Monitor/cmd/nxt-admin/cmd"

func main() {
	cmd.Execute()
}
