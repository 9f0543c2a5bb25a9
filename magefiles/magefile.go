//go:build mage

// SPDX-License-Identifier: MIT

// Package main provides build targets for kfca using Mage.
//
// Usage:
//
//	mage test           Run all tests with the race detector
//	mage cover          Write coverage.out and print the per-function summary
//	mage vet            Run go vet
//	mage lint           Run golangci-lint
//	mage check          Vet, lint and test
//	mage clean          Remove coverage artifacts
package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo        = "go"
	binLint      = "golangci-lint"
	coverProfile = "coverage.out"
)

// Test runs every package test with -race.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "-count=1", "./...")
}

// Cover writes a coverage profile and prints the function summary.
func Cover() error {
	if err := sh.RunV(binGo, "test", "-covermode=atomic", "-coverprofile="+coverProfile, "./..."); err != nil {
		return err
	}
	return sh.RunV(binGo, "tool", "cover", "-func="+coverProfile)
}

// Vet runs go vet over all packages.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Check runs vet and lint, then the tests.
func Check() {
	mg.SerialDeps(Vet, Lint, Test)
}

// Clean removes coverage artifacts.
func Clean() error {
	if err := os.Remove(coverProfile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
