package utils

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func IsTty() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ProtectedSection captures SIGINT and SIGTERM while active so an
// operator interrupt defers termination to a safe boundary instead of
// cutting a broadcast in half.
type ProtectedSection struct {
	info     string
	ch       chan os.Signal
	signaled bool
}

func NewProtectedSection(info string) *ProtectedSection {
	result := &ProtectedSection{
		ch:   make(chan os.Signal, 1),
		info: info,
	}
	go func() {
		for {
			sig, ok := <-result.ch
			if !ok {
				break
			}
			result.signaled = true
			slog.Warn("received signal", "signal", sig, "info", info)
		}
	}()

	return result
}

func (p *ProtectedSection) Start() {
	signal.Notify(p.ch, syscall.SIGINT, syscall.SIGTERM)
}

func (p *ProtectedSection) Stop() {
	signal.Stop(p.ch)
}

func (p *ProtectedSection) Close() {
	p.Stop()
	close(p.ch)
}

func (p *ProtectedSection) Signaled() bool {
	return p.signaled
}
