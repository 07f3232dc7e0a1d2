package main

import (
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/fujiwara/logutils"
)

// LoggerSetup routes the standard logger through a level filter writing to w
// and returns a func restoring the previous output.
func LoggerSetup(w io.Writer, minLevel string) func() {
	beforeOutput := log.Writer()
	beforeFlags := log.Flags()
	cleanup := func() {
		log.SetOutput(beforeOutput)
		log.SetFlags(beforeFlags)
	}
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"debug", "info", "notice", "warn", "error"},
		MinLevel: "info",
		ModifierFuncs: []logutils.ModifierFunc{
			logutils.Color(color.FgHiBlack),
			logutils.Color(color.FgWhite),
			logutils.Color(color.FgHiBlue),
			logutils.Color(color.FgYellow),
			logutils.Color(color.FgRed, color.Bold),
		},
		Writer: w,
	}
	if minLevel != "" {
		filter.MinLevel = logutils.LogLevel(minLevel)
	}
	if minLevel == "debug" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	log.SetOutput(filter)
	log.Println("[debug] log level", filter.MinLevel)
	return cleanup
}
