// Package main provides the entry point for the scaninsight CLI.
package main

func main() {
	Execute()
}
