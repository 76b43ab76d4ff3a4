package main

import (
	"os"

	"github.com/hateftavakkoli/MongooseIM/cmd/mongooseim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
