//go:build unix

package input

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func notifySignals(ch chan<- os.Signal) {
	signal.Notify(ch, unix.SIGINT, unix.SIGTERM, unix.SIGHUP)
}

func stopSignals(ch chan<- os.Signal) {
	signal.Stop(ch)
}
