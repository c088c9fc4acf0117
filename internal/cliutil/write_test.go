package cliutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf strings.Builder
	Writef(&buf, "rendered %d files\n", 3)
	assert.Equal(t, "rendered 3 files\n", buf.String())
}

func TestHeaderf(t *testing.T) {
	var buf strings.Builder
	Headerf(&buf, "Scaffold %s", "Report")
	assert.Equal(t, "Scaffold Report\n===============\n\n", buf.String())
}
