package main

import (
	"fmt"
	"os"

	"github.com/gjermundgaraba/libbridge/cmd/bridge/cmd"
	"github.com/gjermundgaraba/libbridge/route"
	"github.com/pkg/errors"
)

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString(errorHeadline(err))
		if route.IsNotSupported(err) {
			os.Exit(1)
		}

		var tracer stackTracer
		if errors.As(err, &tracer) {
			for _, f := range tracer.StackTrace() {
				os.Stderr.WriteString(fmt.Sprintf("%+s:%d\n", f, f))
			}
		}

		os.Exit(1)
	}
}

// errorHeadline separates "no way to make this transfer" from failures along the way.
func errorHeadline(err error) string {
	if route.IsNotSupported(err) {
		return fmt.Sprintf("Transfer not supported: %s\n", err)
	}
	return "Something went wrong:\n"
}
