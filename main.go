package main

import (
	"github.com/txlens/txlens/cmd"
)

func main() {
	cmd.Execute()
}
