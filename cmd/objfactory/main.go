package main

import (
	"fmt"
	"os"

	// Import format packages to ensure their registrations run
	_ "github.com/arthur-debert/objfactory/pkg/readers/json"
	_ "github.com/arthur-debert/objfactory/pkg/readers/toml"
	_ "github.com/arthur-debert/objfactory/pkg/readers/xml"
	_ "github.com/arthur-debert/objfactory/pkg/readers/yaml"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
