package main

import "github.com/nfrund/authflow/cmd/authflow/cmd"

func main() {
	cmd.Execute()
}
