package libsym

import (
	"fmt"
	"io"
	"strings"

	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

// WordStream is a finite sequence of crystal words delivered over a channel.
//
// Each Word pulled from Outlet is an independently owned copy -- unlike a
// Visitor's transient view, stream consumers may retain what they pull.
// Ownership travels with the Word.
type WordStream struct {
	Outlet chan symalg.Word
}

// ExpandStream walks the crystal of start in GL(n) on a background
// goroutine, emitting a copy of each visited word.
func ExpandStream(n int, start symalg.Word) *WordStream {
	stream := &WordStream{
		Outlet: make(chan symalg.Word, 1),
	}

	go func() {
		Walk(n, start, func(w symalg.Word) bool {
			stream.Outlet <- w.Clone()
			return true
		})
		stream.Close()
	}()

	return stream
}

func (stream *WordStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

// PullAll drains the stream, returning the number of words pulled.
func (stream *WordStream) PullAll() int {
	count := 0
	for range stream.Outlet {
		count++
	}
	return count
}

// Print writes each word as a labeled CSV row and forwards it downstream.
func (stream *WordStream) Print(out io.WriteCloser, label string) *WordStream {
	next := &WordStream{
		Outlet: make(chan symalg.Word, 1),
	}

	go func() {
		buf := strings.Builder{}
		buf.Grow(128)

		count := 0
		for w := range stream.Outlet {
			if len(label) > 0 {
				buf.WriteString(label)
			}
			buf.WriteByte(',')

			count++
			fmt.Fprintf(&buf, "%06d,%s\n", count, w.String())
			out.Write([]byte(buf.String()))
			buf.Reset()
			next.Outlet <- w
		}
		out.Close()
		next.Close()
	}()

	return next
}
