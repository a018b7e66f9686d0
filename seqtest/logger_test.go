// Copyright © 2024 The ELPS authors

package seqtest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingTB struct {
	testing.TB
	lines []string
}

func (r *recordingTB) Log(args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprint(args...))
}

func TestLogger(t *testing.T) {
	tb := &recordingTB{TB: t}
	log := NewLogger(tb)
	n, err := log.Write([]byte("one\ntw"))
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []string{"one"}, tb.lines)
	_, err = log.Write([]byte("o\nthree\nfour"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, tb.lines)
	log.Flush()
	assert.Equal(t, []string{"one", "two", "three", "four"}, tb.lines)
	log.Flush()
	assert.Len(t, tb.lines, 4)
}
