package main

import (
	"fmt"
	"os"

	"github.com/rgonek/md-docx-converter/converter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if code := converter.ErrorCode(err); code != "" {
			fmt.Fprintf(os.Stderr, "Error [%s]: %v\n", code, err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
