package util

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
)

const tmpSuffix = "_tmp"

// SetupInterruptHandler cancels the running download on SIGINT/SIGTERM and
// removes half-written chapter folders. A second signal exits immediately.
func SetupInterruptHandler(outputDir string, cancel context.CancelFunc) {
	sig := make(chan os.Signal, 2)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		fmt.Println("\nInterrupt received. Cleaning up...")
		cancel()

		CleanupUnfinishedTempFolders(outputDir)
		RemoveIfEmpty(outputDir)

		<-sig
		fmt.Println("\nExiting due to interrupt.")
		os.Exit(1)
	}()
}

func CleanupUnfinishedTempFolders(outputDir string) []string {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil
	}

	var removed []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || !strings.HasSuffix(name, tmpSuffix) {
			continue
		}

		full := filepath.Join(outputDir, name)
		if err := os.RemoveAll(full); err != nil {
			fmt.Printf("Error cleaning up %s: %v\n", full, err)
			continue
		}
		removed = append(removed, full)
	}

	return removed
}

func RemoveIfEmpty(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) > 0 {
		return false
	}

	return os.Remove(dir) == nil
}

func CleanupFolder(folder string) {
	_ = os.RemoveAll(folder)
}
