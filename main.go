package main

import "asset-indexer/cmd"

func main() {
	cmd.Execute()
}
