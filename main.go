package main

import "github.com/StinkyLord/spdx-sbom-parser/cmd"

func main() {
	cmd.Execute()
}
