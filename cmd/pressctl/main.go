// Package main provides pressctl, the operator CLI for the press machine store.
// It talks to the store directly, so it works without a running pressd.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
