package main

import "github.com/oshokin/solar-cycle/cmd/solar-cycle-server/cmd"

func main() {
	cmd.Execute()
}
