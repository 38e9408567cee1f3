//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	serverBin   = "./bin/server"
	pingpongBin = "./bin/pingpong"
)

const (
	testServerConfigPath = "test_configs/server.toml"
	testBotConfigPath    = "test_configs/bot.toml"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server and console binaries
func Build() error {
	mg.Deps(goModDownload)
	if err := sh.Run("go", "build", "-o", serverBin, "./cmd/server"); err != nil {
		return err
	}
	return sh.Run("go", "build", "-o", pingpongBin, "./cmd/pingpong")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin)
}

// Test runs unit tests with the race detector
func Test() error {
	mg.Deps(goModDownload)
	return sh.RunV("go", "test", "-race", "./...")
}

// AutoTest runs the browser suite against a freshly built server
func AutoTest() error {
	mg.Deps(Build)
	if err := os.Chdir("tests"); err != nil {
		return err
	}
	return sh.RunV(
		"go", "test", "-v", "-tags", "e2e", "./...",
		"-server-bin", "../"+serverBin,
		"-server-config", testServerConfigPath,
		"-bot-config", testBotConfigPath,
	)
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}
