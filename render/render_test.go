package render

import (
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestList(t *testing.T) {
	opts := Options{}
	assert.Equal(t, List(nil, opts), "(empty)")
	assert.Equal(t, List([]int{7}, opts), "[7]")
	assert.Equal(t, List([]int{3, 2, 1}, opts), "[3] <-> [2] <-> [1]")
}

func TestListWraps(t *testing.T) {
	got := List([]int{10, 20, 30, 40}, Options{Width: 12})
	lines := strings.Split(got, "\n")
	assert.DeepEqual(t, lines, []string{
		"[10]",
		" <-> [20]",
		" <-> [30]",
		" <-> [40]",
	})

	got = List([]int{1, 2, 3, 4}, Options{Width: 20})
	assert.DeepEqual(t, strings.Split(got, "\n"), []string{
		"[1] <-> [2] <-> [3]",
		" <-> [4]",
	})
}

func TestStatus(t *testing.T) {
	assert.Equal(t, Status("ok", false, Options{}), "ok")
	assert.Equal(t, Status("fault", true, Options{}), "fault")
	// Colour only adds escape codes around the text.
	assert.Assert(t, strings.Contains(Status("fault", true, Options{Color: true}), "fault"))
}
