package main

import (
	"github.com/sagelane/vestibule/cmd/vestibule-cli/cmd"
)

func main() {
	cmd.Execute()
}
