package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mah0x211/argparser/log"
	"github.com/mah0x211/argparser/util"
)

type StartFunc func(args []string)

// Start runs startfn with args on a new goroutine and returns the code passed
// to util.Exit, or 0 if startfn returned normally. If the process receives
// SIGINT or SIGTERM first, the signal number is returned.
//
// log.Verbose is enabled when the <prefix>_VERBOSE environment variable holds
// a truthy value.
func Start(prefix string, args []string, startfn StartFunc) int {
	if v, found := util.Getenv(prefix + "_VERBOSE"); found && util.IsTruthy(v) {
		log.Verbose = true
	}

	// setup signal receiver
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigch)

	util.ExitCode = 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		startfn(args)
	}()

	select {
	case <-done:
	case sig := <-sigch:
		log.Errorf("stop command by %s", sig)
		return int(sig.(syscall.Signal))
	}

	return util.ExitCode
}
