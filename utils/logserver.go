package utils

import (
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
)

const LOG_SERVER_HISTORY_LINES = 1000

// LogServer buffers json log lines and serves them over http so a
// long-running distribution can be watched from another terminal.
type LogServer struct {
	mutex sync.RWMutex
	lines []string
}

func (server *LogServer) Write(p []byte) (int, error) {
	server.mutex.Lock()
	defer server.mutex.Unlock()
	server.lines = append(server.lines, string(p))
	if len(server.lines) > LOG_SERVER_HISTORY_LINES {
		server.lines = server.lines[len(server.lines)-LOG_SERVER_HISTORY_LINES:]
	}
	return len(p), nil
}

func (server *LogServer) snapshot() string {
	server.mutex.RLock()
	defer server.mutex.RUnlock()
	var result string
	for _, line := range server.lines {
		result += line
	}
	return result
}

func NewLogServer(address string) *LogServer {
	server := &LogServer{
		lines: make([]string, 0, LOG_SERVER_HISTORY_LINES),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Get("/", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "application/x-ndjson")
		return c.SendString(server.snapshot())
	})

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Warn("log server terminated", "error", err.Error())
		}
	}()

	return server
}
