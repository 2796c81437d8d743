package main

import "github.com/zooyer/geodxf/cmd/geodxf/cmd"

func main() {
	cmd.Execute()
}
