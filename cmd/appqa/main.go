package main

import "github.com/devicelab-dev/appqa/pkg/cli"

func main() {
	cli.Execute()
}
