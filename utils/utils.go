package utils

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
)

// ContainsString returns true if targetString is in sliceOfStrings
func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// IndexOf returns the position of targetString in sliceOfStrings, or -1 if it is not there
func IndexOf(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return i
		}
	}
	return -1
}

// NormalizeInput lower-cases and trims a value typed by the user
func NormalizeInput(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// GetSignalChannel returns a channel that receive interrupt or termination signals
func GetSignalChannel() chan os.Signal {
	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)
	return signalChannel
}
