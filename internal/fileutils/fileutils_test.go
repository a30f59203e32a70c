package fileutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"salesops/sales-analytics/internal/fileutils"
	"salesops/sales-analytics/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales_data.txt")
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestReadSalesLines(t *testing.T) {
	content := "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region\n" +
		"T001|2024-01-15|P101|Laptop|2|45000|C001|North\n" +
		"\n" +
		"T002|2024-01-15|P102|Mouse|5|1200|C002|South\r\n"

	lines, err := fileutils.ReadSalesLines(writeTemp(t, []byte(content)))
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "T001|2024-01-15|P101|Laptop|2|45000|C001|North", lines[0])
	assert.Equal(t, "T002|2024-01-15|P102|Mouse|5|1200|C002|South", lines[1])
}

func TestReadSalesLinesLatin1Fallback(t *testing.T) {
	// 0xE9 is latin-1 'é' and invalid as a standalone UTF-8 byte.
	content := []byte("Header\nT001|2024-01-15|P101|Caf\xe9 Machine|2|4500|C001|North\n")

	lines, err := fileutils.ReadSalesLines(writeTemp(t, content))
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Café Machine")
}

func TestReadSalesLinesHeaderOnly(t *testing.T) {
	lines, err := fileutils.ReadSalesLines(writeTemp(t, []byte("TransactionID|Date\n\n\n")))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadSalesLinesEmptyFile(t *testing.T) {
	lines, err := fileutils.ReadSalesLines(writeTemp(t, nil))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadSalesLinesMissingFile(t *testing.T) {
	_, err := fileutils.ReadSalesLines(filepath.Join(t.TempDir(), "absent.txt"))

	var inputErr *parsererror.InputFileError
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Error(), "absent.txt")
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	assert.True(t, fileutils.FileExists(path))
	assert.False(t, fileutils.FileExists(filepath.Join(dir, "absent.txt")))
	assert.False(t, fileutils.FileExists(dir), "directories do not count as files")
}

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.txt")
	require.NoError(t, fileutils.WriteFile(path, []byte("content"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestCreateFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "report.txt")
	f, err := fileutils.CreateFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.True(t, fileutils.FileExists(path))
}

func TestOpenFileMissing(t *testing.T) {
	_, err := fileutils.OpenFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
