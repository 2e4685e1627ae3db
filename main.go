package main

import "github.com/Warinthorn/carelink_backend/cmd"

func main() {
	cmd.Execute()
}
