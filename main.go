package main

import (
	"github/kontos/connect/cmd"
)

func main() {
	cmd.Execute()
}
