package main

import "github.com/hadv/vito-cli/cmd"

// version is set at build time via -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	cmd.Execute(version)
}
