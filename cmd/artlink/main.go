package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/artlink/pkg/style"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf(MsgErrorFormat, err)))
		os.Exit(1)
	}
}
