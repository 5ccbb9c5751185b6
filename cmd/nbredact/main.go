// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/nbredact/cmd/nbredact/cmd"
)

func main() {
	cmd.Execute()
}
