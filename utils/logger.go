package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// ANSI colour codes — make terminal output easier to read while debugging
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
)

var (
	mu  sync.Mutex
	out io.Writer = os.Stdout
)

// SetOutput redirects all log lines to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func ts() string {
	return time.Now().Format("15:04:05")
}

func write(colour, level, format string, a ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "%s[%s] %s %s%s\n", colour, ts(), level, fmt.Sprintf(format, a...), reset)
}

func Info(format string, a ...interface{}) {
	write(blue, "[INFO] ", format, a...)
}

func Success(format string, a ...interface{}) {
	write(green, "[OK]   ", format, a...)
}

func Warn(format string, a ...interface{}) {
	write(yellow, "[WARN] ", format, a...)
}

func Error(format string, a ...interface{}) {
	write(red, "[ERROR]", format, a...)
}

func Section(title string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "\n%s[%s] ══════════ %s ══════════%s\n\n", cyan, ts(), title, reset)
}
