package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveOutputPathDerivedName(t *testing.T) {
	in := filepath.Join(t.TempDir(), "report.pdf")

	out, err := resolveOutputPath(in, "", false, false, false)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(filepath.Dir(in), "report-stripped.pdf"), out)
}

func TestResolveOutputPathInPlaceIsIdentity(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(in, []byte("x"), 0o644))

	// The identity output never requires --force, even though it exists.
	out, err := resolveOutputPath(in, "", true, false, false)

	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestResolveOutputPathExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "report.pdf")
	explicit := filepath.Join(dir, "clean.pdf")

	out, err := resolveOutputPath(in, explicit, false, false, false)

	require.NoError(t, err)
	require.Equal(t, explicit, out)
}

func TestResolveOutputPathOutputWithMultipleInputs(t *testing.T) {
	_, err := resolveOutputPath("/tmp/a.pdf", "/tmp/out.pdf", false, false, true)

	require.Error(t, err)
	require.Contains(t, err.Error(), "single input")
}

func TestResolveOutputPathOutputConflictsWithInPlace(t *testing.T) {
	_, err := resolveOutputPath("/tmp/a.pdf", "/tmp/out.pdf", true, false, false)

	require.Error(t, err)
	require.Contains(t, err.Error(), "not both")
}

func TestResolveOutputPathExistingOutputNeedsForce(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "a.pdf")
	existing := filepath.Join(dir, "a-stripped.pdf")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))

	_, err := resolveOutputPath(in, "", false, false, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "use --force")

	out, err := resolveOutputPath(in, "", false, true, false)
	require.NoError(t, err)
	require.Equal(t, existing, out)
}

func TestStem(t *testing.T) {
	require.Equal(t, "report", stem("/x/report.pdf"))
	require.Equal(t, "report.v2", stem("report.v2.pdf"))
	require.Equal(t, "noext", stem("noext"))
}
