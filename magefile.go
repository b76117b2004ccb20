//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "jsontrans"
	pkg     = "./cmd/jsontrans"
	version = "codeberg.org/snonux/jsontrans/internal.Version"
)

var Default = Build

func ldflags() string {
	v := os.Getenv("VERSION")
	if v == "" {
		out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
		if err != nil {
			v = "dev"
		} else {
			v = out
		}
	}
	return fmt.Sprintf("-X %s=%s", version, v)
}

// Build compiles the jsontrans binary
func Build() error {
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", binary, pkg)
}

// Test runs the unit tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Install installs jsontrans into GOPATH/bin
func Install() error {
	mg.Deps(Vet)
	return sh.RunV("go", "install", "-ldflags", ldflags(), pkg)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm(binary)
}
