package out

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	bold   = color.New(color.Bold)
	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// Normf prints a normal message.
func Normf(format string, v ...interface{}) {
	fmt.Printf(format, v...)
}

// Boldf prints a bold message.
func Boldf(format string, v ...interface{}) {
	bold.Printf(format, v...)
}

// Examf prints an example message.
func Examf(format string, v ...interface{}) {
	cyan.Printf(format, v...)
}

// Warnf prints a warning message.
func Warnf(format string, v ...interface{}) {
	yellow.Printf(format, v...)
}

// Errof prints an error message.
func Errof(format string, v ...interface{}) {
	red.Printf(format, v...)
}

// Fieldf prints a bold label padded to width followed by a normal value.
func Fieldf(width int, label string, format string, v ...interface{}) {
	bold.Printf("%-*s", width, label+":")
	fmt.Printf(" "+format+"\n", v...)
}
