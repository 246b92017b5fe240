// Package main is the entry point for the CROU report generator.
package main

import "github.com/roufai-ne/crou-management-system-sub010/cmd/reportgen/cmd"

func main() {
	cmd.Execute()
}
