package poffset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zimwip/poffset"
)

func TestFieldsWithinStruct(t *testing.T) {
	fields := poffset.Fields()
	require.Len(t, fields, 3)

	for _, field := range fields {
		assert.Positive(t, uint64(field.StructSize), "%s has no size", field.Struct)
		assert.Less(t, uint64(field.Offset), uint64(field.StructSize),
			"%s.%s lies outside its struct", field.Struct, field.Member)
	}
}

func TestFieldsOrder(t *testing.T) {
	keys := []string{}
	for _, field := range poffset.Fields() {
		keys = append(keys, field.Key)
	}

	assert.Equal(t, []string{
		"AVStream_CodecPar_Offset",
		"AVIOContext_Error_Offset",
		"AVFrame_BestEffortTimestamp_Offset",
	}, keys)
}

func TestFieldsStable(t *testing.T) {
	assert.Equal(t, poffset.Fields(), poffset.Fields())
}
