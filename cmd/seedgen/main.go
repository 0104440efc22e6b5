package main

import (
	"seedgen/internal/cmd"
)

func main() {
	cmd.Execute()
}
