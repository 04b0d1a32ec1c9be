package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"logcatalog/internal/app"
	"logcatalog/internal/types"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	skipColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

func printSummary(w io.Writer, summary app.RoundSummary) {
	printRound(w, "messages", summary.Messages)
	printRound(w, "loggers", summary.Loggers)
	for _, id := range summary.Written() {
		fmt.Fprintf(w, "  wrote %s\n", id)
	}
	diagnostics := summary.Diagnostics()
	fmt.Fprintf(w, "%d error(s), %d warning(s)\n",
		diagnostics.Count(types.SeverityError),
		diagnostics.Count(types.SeverityWarning))
}

func printRound(w io.Writer, label string, result types.RoundResult) {
	status := skipColor.Sprint("skipped")
	switch {
	case result.Claimed && result.Succeeded:
		status = okColor.Sprint("generated")
	case result.Claimed:
		status = failColor.Sprint("failed")
	}
	if result.BundleName != "" {
		fmt.Fprintf(w, "%s: %s (%s)\n", label, status, result.BundleName)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, status)
}

func printInspect(w io.Writer, result app.InspectResult) {
	if result.BundleName != "" {
		fmt.Fprintf(w, "bundle: %s\n", result.BundleName)
	}
	for _, msg := range result.Messages {
		fmt.Fprintf(w, "%s [%s] %s\n", okColor.Sprint(msg.ID), msg.Level, msg.Message)
		if msg.Comment != "" {
			fmt.Fprintf(w, "    %s\n", dimColor.Sprint(msg.Comment))
		}
		if msg.Cause != "" {
			fmt.Fprintf(w, "    cause: %s\n", msg.Cause)
		}
		if msg.Action != "" {
			fmt.Fprintf(w, "    action: %s\n", msg.Action)
		}
	}
	if len(result.Loggers) == 0 {
		return
	}
	fmt.Fprintln(w, "loggers:")
	for _, logger := range result.Loggers {
		publish := "unpublished"
		if logger.Publish {
			publish = "published"
		}
		fmt.Fprintf(w, "- %s (%s): %s [%s]\n", logger.Name, logger.Subsystem, logger.Description, publish)
	}
}
