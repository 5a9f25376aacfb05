package main

import "github.com/meysamhadeli/snapgrid/cmd"

func main() {
	cmd.Execute()
}
