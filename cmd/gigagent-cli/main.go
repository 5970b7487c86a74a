package main

import "github.com/nfrund/gigagent/cmd/gigagent-cli/cmd"

func main() {
	cmd.Execute()
}
