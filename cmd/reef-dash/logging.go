package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/reef-dash/constants"
)

const (
	logDir      = constants.LogDir
	logFileName = constants.LogFileName
	maxLogSize  = constants.MaxLogSize
)

// setupLogging routes the standard logger to logs/reef-dash.log when debug is set
// Without debug all output is discarded so nothing reaches the terminal
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("reef-dash-%s.log", time.Now().Format("20060102-150405")))
		// On rename failure keep appending to the oversized file
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("=== reef-dash started (pid %d) ===", os.Getpid())
	return f
}
