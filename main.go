package main

import "parcel-recon/cmd"

func main() {
	cmd.Execute()
}
