package main

import "github.com/oshokin/solar-cycle/cmd/solar-cycle/cmd"

func main() {
	cmd.Execute()
}
