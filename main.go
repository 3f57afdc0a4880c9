package main

import (
	cmd "github.com/textlab/textapi/cmd/textapi"
	"github.com/textlab/textapi/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting textapi")
	cmd.Execute()
}
