package gradle

import (
	"bytes"
	"strings"
	"sync"
)

const outputTailLines = 20

// lineWriter splits process output into lines, forwards each to onLine and
// keeps the last lines for error reports.
type lineWriter struct {
	mu     sync.Mutex
	onLine func(string)
	buf    bytes.Buffer
	tail   []string
}

func newLineWriter(onLine func(string)) *lineWriter {
	return &lineWriter{onLine: onLine}
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Keep the partial line for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(line)
	}
	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

// Tail returns the last lines written.
func (w *lineWriter) Tail() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return strings.Join(w.tail, "\n")
}

// emit must be called with mu held.
func (w *lineWriter) emit(line string) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return
	}
	w.tail = append(w.tail, line)
	if len(w.tail) > outputTailLines {
		w.tail = w.tail[len(w.tail)-outputTailLines:]
	}
	if w.onLine != nil {
		w.onLine(line)
	}
}
