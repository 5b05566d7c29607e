package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "glbb: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the command tree and closes the debug log on every exit path
func execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

func closeLog() {
	if logFile == nil {
		return
	}
	log.SetOutput(io.Discard)
	logFile.Close()
	logFile = nil
}
