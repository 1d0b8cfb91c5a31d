package main

import "bullion/cmd"

func main() {
	cmd.Execute()
}
