package main

import "volunteer-hub.com/volunteer-hub/cmd"

func main() {
	cmd.Execute()
}
