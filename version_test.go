package poffset_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zimwip/poffset"
)

func TestHeaderVersionMatchesLinked(t *testing.T) {
	header := poffset.HeaderVersion()
	linked := poffset.LinkedVersion()

	assert.Equal(t, header.Segments()[0], linked.Segments()[0],
		"headers %s and library %s disagree on major", header, linked)
}

func TestReportLabel(t *testing.T) {
	r := poffset.NewReport()

	major, err := r.Major()
	require.NoError(t, err)
	assert.Equal(t, poffset.HeaderVersion().Segments()[0], major)

	out, err := r.Bytes()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte(fmt.Sprintf("var V%d = &Config{", major))))
}

func TestReportLines(t *testing.T) {
	out, err := poffset.NewReport().Bytes()
	require.NoError(t, err)

	// Three Config lines, the closing brace, then twelve constants.
	lines := bytes.Split(bytes.TrimSuffix(out, []byte("\n")), []byte("\n"))
	assert.Len(t, lines, 16)
	assert.Equal(t, "}", string(lines[3]))
}
