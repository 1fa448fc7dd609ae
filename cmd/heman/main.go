package main

import "github.com/fleetingbytes/http-status-codes2/internal/cli"

func main() {
	cli.Execute()
}
