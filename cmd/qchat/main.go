package main

import (
	"fmt"
	"os"

	"github.com/kobzarvs/qchat/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		fmt.Fprintln(os.Stderr, "qchat:", err)
		os.Exit(1)
	}
}
