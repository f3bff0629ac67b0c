package pdf

import (
	"errors"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPasswordError(t *testing.T) {
	assert.True(t, isPasswordError(errors.New("pdfcpu: please provide the correct password")))
	assert.True(t, isPasswordError(errors.New("pdfcpu: this file is password protected")))
	assert.False(t, isPasswordError(errors.New("pdfcpu: corrupt xref section")))
	assert.False(t, isPasswordError(nil))
}

func TestEraseInfoDictBlanksReferenceAndObject(t *testing.T) {
	data := []byte("%PDF-1.7\n" +
		"12 0 obj\n<< /Producer (pdfcpu) /ModDate (D:20260825) >>\nendobj\n" +
		"trailer\n<< /Size 13 /Root 1 0 R /Info 12 0 R >>\n%%EOF\n")
	ref := types.NewIndirectRef(12, 0)

	out := eraseInfoDict(data, ref)

	require.Len(t, out, len(data), "replacements must preserve byte offsets")
	assert.NotContains(t, string(out), "/Info 12 0 R")
	assert.NotContains(t, string(out), "Producer")
	assert.NotContains(t, string(out), "ModDate")
	assert.Contains(t, string(out), "12 0 obj\n<<>>\nendobj")
}

func TestEraseInfoDictWithoutGeneratedObject(t *testing.T) {
	data := []byte("trailer\n<< /Size 4 /Root 1 0 R /Info 3 0 R >>\n%%EOF\n")

	out := eraseInfoDict(data, nil)

	require.Len(t, out, len(data))
	assert.NotContains(t, string(out), "/Info")
}

func TestBlankObjectMatchesExactObjectNumber(t *testing.T) {
	data := []byte("112 0 obj\n<< /Title (keep) >>\nendobj\n" +
		"12 0 obj\n<< /Producer (drop it now) >>\nendobj\n")

	out := blankObject(data, 12)

	require.Len(t, out, len(data))
	assert.Contains(t, string(out), "/Title (keep)", "object 112 must not be touched")
	assert.NotContains(t, string(out), "Producer")
	assert.Contains(t, string(out), "12 0 obj\n<<>>\nendobj")
}

func TestBlankObjectMissingObjectIsNoOp(t *testing.T) {
	data := []byte("1 0 obj\n<< /Type /Catalog >>\nendobj\n")

	assert.Equal(t, data, blankObject(data, 9))
}
