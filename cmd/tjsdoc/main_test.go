package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geotjs/internal/domain/tjs10"
	"geotjs/internal/infrastructure/xmlcodec"
)

const describeKey = `<DescribeKey xmlns="http://www.opengis.net/tjs/1.0" service="TJS" version="1.0">
  <FrameworkURI>http://example.org/frameworks/provinces</FrameworkURI>
</DescribeKey>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execRootCmd(append([]string{"tjsdoc"}, args...), &out)
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.xml", describeKey)
	bad := writeFile(t, dir, "bad.xml", `<DescribeKey xmlns="http://www.opengis.net/tjs/1.0"/>`)
	broken := writeFile(t, dir, "broken.xml", `<DescribeKey`)

	out, err := run(t, "validate", good)
	require.NoError(t, err)
	assert.Equal(t, good+": ok\n", out)

	out, err = run(t, "validate", good, bad, broken)
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Contains(t, out, bad+": DescribeKey/FrameworkURI: ")
	assert.Contains(t, out, broken+": malformed document")

	_, err = run(t, "validate")
	assert.Error(t, err)
}

func TestConvertCmd(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "in.xml", describeKey)
	dst := filepath.Join(dir, "out.xml.zst")

	_, err := run(t, "convert", src, "-o", dst, "--compress", "zstd")
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, xmlcodec.CompressionZstd, xmlcodec.Detect(data))

	out, err := run(t, "convert", dst, "--indent=false")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<FrameworkURI>http://example.org/frameworks/provinces</FrameworkURI>")

	_, err = run(t, "convert", src, "--compress", "lz4")
	assert.Error(t, err)
}

func TestInspectCmd(t *testing.T) {
	out, err := run(t, "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "DescribeKeyType")
	assert.Equal(t, len(tjs10.Classifiers())+1, strings.Count(out, "\n"))

	out, err = run(t, "inspect", "ColumnType1")
	require.NoError(t, err)
	assert.Contains(t, out, "purpose")

	_, err = run(t, "inspect", "Nope")
	assert.ErrorIs(t, err, tjs10.ErrInvalidClassifier)
}

func TestNewCmd(t *testing.T) {
	out, err := run(t, "new", "DescribeKeyType")
	require.NoError(t, err)
	assert.Contains(t, out, "<DescribeKey")

	doc, err := xmlcodec.DecodeBytes(context.Background(), []byte(out))
	require.NoError(t, err)
	assert.NotNil(t, doc.DescribeKey)

	out, err = run(t, "new", "ColumnType1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<ColumnType1"))

	out, err = run(t, "new", "DocumentRoot")
	require.ErrorIs(t, err, tjs10.ErrNoStandaloneForm)
	assert.Contains(t, err.Error(), "DocumentRoot")
	assert.Empty(t, out)

	_, err = run(t, "new", "Nope")
	assert.ErrorIs(t, err, tjs10.ErrInvalidClassifier)
}
