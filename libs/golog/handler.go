package golog

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

type writerHandler struct {
	mu sync.Mutex
	w  io.Writer
}

// WriterHandler returns a handler that formats entries as a single text
// line and writes them to w.
func WriterHandler(w io.Writer) Handler {
	return &writerHandler{w: w}
}

func (h *writerHandler) Log(e *Entry) error {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "%s %s [%s] %s", e.Time.Format("2006/01/02 15:04:05"), e.Lvl, e.Src, e.Msg)
	for i := 0; i+1 < len(e.Ctx); i += 2 {
		fmt.Fprintf(buf, " %v=%v", e.Ctx[i], e.Ctx[i+1])
	}
	buf.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

type discardHandler struct{}

// DiscardHandler returns a handler that drops all entries. Useful in tests.
func DiscardHandler() Handler {
	return discardHandler{}
}

func (discardHandler) Log(*Entry) error {
	return nil
}
