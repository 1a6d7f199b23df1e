package jsonstream

import (
	"fmt"
	"strings"
)

// recorder is a Handler that records one string per callback,
// formatted so two recordings can be compared with go-cmp (or plain
// reflect.DeepEqual / slice equality) to check split invariance and
// ordering properties.
type recorder struct {
	events []string
	errs   map[string]error // inject an error the next time the named callback fires
}

func newRecorder() *recorder {
	return &recorder{errs: map[string]error{}}
}

// mergedEvents returns the recorded events with each run of adjacent
// string_piece events joined into one. A string body split across
// Write calls arrives as one piece per buffer, so recordings of the
// same document fed in different chunkings are compared this way.
func (r *recorder) mergedEvents() []string {
	const prefix = "string_piece("
	var out []string
	for _, ev := range r.events {
		if n := len(out); n > 0 && strings.HasPrefix(ev, prefix) && strings.HasPrefix(out[n-1], prefix) {
			last := out[n-1]
			out[n-1] = last[:len(last)-1] + ev[len(prefix):]
			continue
		}
		out = append(out, ev)
	}
	return out
}

func (r *recorder) failOn(name string, err error) {
	r.errs[name] = err
}

func (r *recorder) check(name string) error {
	if err, ok := r.errs[name]; ok {
		delete(r.errs, name)
		return err
	}
	return nil
}

func (r *recorder) OnObjectBegin() error {
	r.events = append(r.events, "object_begin")
	return r.check("object_begin")
}

func (r *recorder) OnObjectEnd() error {
	r.events = append(r.events, "object_end")
	return r.check("object_end")
}

func (r *recorder) OnArrayBegin() error {
	r.events = append(r.events, "array_begin")
	return r.check("array_begin")
}

func (r *recorder) OnArrayEnd() error {
	r.events = append(r.events, "array_end")
	return r.check("array_end")
}

func (r *recorder) OnStringBegin() error {
	r.events = append(r.events, "string_begin")
	return r.check("string_begin")
}

func (r *recorder) OnStringPiece(p []byte) error {
	r.events = append(r.events, fmt.Sprintf("string_piece(%s)", p))
	return r.check("string_piece")
}

func (r *recorder) OnStringEnd() error {
	r.events = append(r.events, "string_end")
	return r.check("string_end")
}

func (r *recorder) OnNumber(neg bool, mantissa, exp, expSign int64) error {
	r.events = append(r.events, fmt.Sprintf("number(%v,%d,%d,%d)", neg, mantissa, exp, expSign))
	return r.check("number")
}

func (r *recorder) OnTrue() error {
	r.events = append(r.events, "true")
	return r.check("true")
}

func (r *recorder) OnFalse() error {
	r.events = append(r.events, "false")
	return r.check("false")
}

func (r *recorder) OnNull() error {
	r.events = append(r.events, "null")
	return r.check("null")
}
