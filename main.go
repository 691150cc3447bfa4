package main

import "github.com/civildesignlab/gorcplan/cmd"

func main() {
	cmd.Execute()
}
