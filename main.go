// Package main provides the acervo CLI application.
// acervo browses and edits a plant catalog served by a REST API.
package main

import "github.com/gnames/acervo/cmd"

func main() {
	cmd.Execute()
}
