package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FlyingPhish/API-Scoper/analyzer"
	"github.com/FlyingPhish/API-Scoper/scoperrors"
)

const swaggerJSON = `{
	"swagger": "2.0",
	"paths": {
		"/users": {
			"get": {"parameters": [{"name": "page", "in": "query"}]},
			"post": {"parameters": [{"name": "body", "in": "body"}]}
		},
		"/users/{id}": {
			"get": {"parameters": [{"name": "id", "in": "path"}]}
		}
	}
}`

const postmanYAML = `info:
  name: Orders
item:
  - name: Folder
    item:
      - name: List orders
        request:
          method: GET
          url:
            raw: https://api.example.com/orders?status=open
            query:
              - key: status
                value: open
      - name: Create order
        request:
          method: POST
          url:
            raw: https://api.example.com/orders
`

// writeSpecDir lays out a fixture directory with one file per map entry.
func writeSpecDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestNewDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, DefaultMaxFileSize, s.MaxFileSize)
	assert.Zero(t, s.MaxNestingDepth)
	assert.Nil(t, s.Logger)
}

func TestSpecFiles(t *testing.T) {
	dir := writeSpecDir(t, map[string]string{
		"b.yaml":     "a: 1",
		"a.json":     "{}",
		"c.yml":      "a: 1",
		"readme.txt": "not a spec",
		"noext":      "{}",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	names, err := SpecFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.yaml", "c.yml"}, names)
}

func TestSpecFilesMissingDirectory(t *testing.T) {
	_, err := SpecFiles(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestScan(t *testing.T) {
	dir := writeSpecDir(t, map[string]string{
		"swagger.json": swaggerJSON,
		"orders.yaml":  postmanYAML,
		"notes.txt":    "ignored",
	})

	batch, err := New().Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, batch.Directory)
	assert.False(t, batch.HasErrors())
	require.Len(t, batch.Results, 2)

	sw := batch.Results["swagger.json"]
	require.NotNil(t, sw)
	assert.Equal(t, analyzer.DocTypeSwagger, sw.Type)
	assert.Equal(t, SourceFormatJSON, sw.Format)
	require.NotNil(t, sw.Summary)
	assert.Equal(t, 3, sw.Summary.TotalEndpoints)
	assert.Equal(t, 2, sw.Summary.MethodDistribution[analyzer.MethodGet])
	assert.Equal(t, 1, sw.Summary.MethodDistribution[analyzer.MethodPost])
	assert.Equal(t, 3, sw.Summary.TotalParameters)

	pm := batch.Results["orders.yaml"]
	require.NotNil(t, pm)
	assert.Equal(t, analyzer.DocTypePostman, pm.Type)
	assert.Equal(t, SourceFormatYAML, pm.Format)
	require.NotNil(t, pm.Summary)
	assert.Equal(t, 2, pm.Summary.TotalEndpoints)
	assert.Equal(t, 1, pm.Summary.MethodDistribution[analyzer.MethodGet])
	assert.Equal(t, 1, pm.Summary.MethodDistribution[analyzer.MethodPost])
	assert.Equal(t, 1, pm.Summary.TotalParameters)
}

func TestScanUnknownType(t *testing.T) {
	dir := writeSpecDir(t, map[string]string{
		"config.yaml": "host: localhost\nport: 8080\n",
	})

	batch, err := New().Scan(dir)
	require.NoError(t, err)
	assert.False(t, batch.HasErrors())

	result := batch.Results["config.yaml"]
	require.NotNil(t, result)
	assert.Equal(t, analyzer.DocTypeUnknown, result.Type)
	assert.Nil(t, result.Summary)
	assert.Equal(t, UnknownTypeMessage, result.Message)
}

func TestScanContinuesPastFailures(t *testing.T) {
	dir := writeSpecDir(t, map[string]string{
		"bad.json":     `{"swagger": `,
		"swagger.json": swaggerJSON,
	})

	batch, err := New().Scan(dir)
	require.NoError(t, err, "per-file failures never abort the batch")
	assert.True(t, batch.HasErrors())

	require.Len(t, batch.Errors, 1)
	assert.Equal(t, "bad.json", batch.Errors[0].Filename)
	assert.True(t, errors.Is(batch.Errors[0].Err, scoperrors.ErrDecode))
	assert.NotContains(t, batch.Results, "bad.json")

	require.Contains(t, batch.Results, "swagger.json")
	assert.Equal(t, analyzer.DocTypeSwagger, batch.Results["swagger.json"].Type)
}

func TestScanFileSizeLimit(t *testing.T) {
	dir := writeSpecDir(t, map[string]string{
		"huge.json": swaggerJSON,
	})

	s := New()
	s.MaxFileSize = 8
	batch, err := s.Scan(dir)
	require.NoError(t, err)

	require.Len(t, batch.Errors, 1)
	assert.Equal(t, "huge.json", batch.Errors[0].Filename)

	var limitErr *scoperrors.ResourceLimitError
	require.True(t, errors.As(batch.Errors[0].Err, &limitErr))
	assert.Equal(t, "file_size", limitErr.ResourceType)
	assert.EqualValues(t, 8, limitErr.Limit)
	assert.Empty(t, batch.Results)
}

func TestScanNestingDepthLimit(t *testing.T) {
	dir := writeSpecDir(t, map[string]string{
		"deep.yaml": "info:\n  name: Deep\nitem:\n  - name: a\n    item:\n      - name: b\n        item:\n          - name: c\n            request:\n              method: GET\n",
	})

	s := New()
	s.MaxNestingDepth = 1
	batch, err := s.Scan(dir)
	require.NoError(t, err)

	require.Len(t, batch.Errors, 1)
	var limitErr *scoperrors.ResourceLimitError
	require.True(t, errors.As(batch.Errors[0].Err, &limitErr))
	assert.Equal(t, "nesting_depth", limitErr.ResourceType)
}

func TestScanOnFileCallback(t *testing.T) {
	dir := writeSpecDir(t, map[string]string{
		"a.json": swaggerJSON,
		"b.yaml": postmanYAML,
	})

	var seen []string
	s := New()
	s.OnFile = func(name string) { seen = append(seen, name) }

	_, err := s.Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.yaml"}, seen)
}

func TestScanIsRepeatable(t *testing.T) {
	dir := writeSpecDir(t, map[string]string{
		"swagger.json": swaggerJSON,
		"orders.yaml":  postmanYAML,
		"plain.yaml":   "a: 1",
	})

	s := New()
	first, err := s.Scan(dir)
	require.NoError(t, err)
	second, err := s.Scan(dir)
	require.NoError(t, err)

	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, first.Filenames(), second.Filenames())
}

func TestScanEmptyDirectory(t *testing.T) {
	batch, err := New().Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, batch.Results)
	assert.False(t, batch.HasErrors())
}

func TestScanFile(t *testing.T) {
	dir := writeSpecDir(t, map[string]string{
		"swagger.json": swaggerJSON,
	})

	result, err := New().ScanFile(filepath.Join(dir, "swagger.json"))
	require.NoError(t, err)
	assert.Equal(t, analyzer.DocTypeSwagger, result.Type)
	require.NotNil(t, result.Summary)
	assert.Equal(t, 3, result.Summary.TotalEndpoints)
}

func TestScanFileMissing(t *testing.T) {
	_, err := New().ScanFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestBatchResultFilenames(t *testing.T) {
	batch := &BatchResult{
		Results: map[string]*FileResult{
			"c.json": {},
			"a.json": {},
			"b.yml":  {},
		},
	}
	assert.Equal(t, []string{"a.json", "b.yml", "c.json"}, batch.Filenames())
}
