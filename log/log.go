package log

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mah0x211/argparser/util"
)

var Stdout io.Writer = os.Stdout
var Stderr io.Writer = os.Stderr

// Verbose enables the output of Debug.
var Verbose bool

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
var debugLabel = color.New(color.Faint).SprintFunc()

func fprintln(w io.Writer, a ...interface{}) {
	fmt.Fprintln(w, a...)
}

func fprintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprintf(w, format+"\n", a...)
}

func Print(a ...interface{}) {
	fprintln(Stdout, a...)
}

func Printf(format string, a ...interface{}) {
	fprintf(Stdout, format, a...)
}

// Error writes a to Stderr prefixed with an "Error:" label.
func Error(a ...interface{}) {
	fprintln(Stderr, append([]interface{}{errorLabel("Error:")}, a...)...)
}

func Errorf(format string, a ...interface{}) {
	fprintf(Stderr, "%s "+format, append([]interface{}{errorLabel("Error:")}, a...)...)
}

// Debug writes a formatted line to Stderr if Verbose is set.
func Debug(format string, a ...interface{}) {
	if Verbose {
		fprintf(Stderr, "%s "+format, append([]interface{}{debugLabel("debug:")}, a...)...)
	}
}

var exit = util.Exit

func Fatal(a ...interface{}) {
	Error(a...)
	exit(1)
}

func Fatalf(format string, a ...interface{}) {
	Errorf(format, a...)
	exit(1)
}
