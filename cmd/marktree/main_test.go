package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand(t *testing.T) {
	fsys := testFs(t, map[string]string{
		"doc.md": "# Hi\n\nhello **world**\n",
	})

	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"render", "doc.md"}, fsys, &out, &errOut))

	var doc document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "doc.md", doc.File)
	require.Len(t, doc.TOC, 1)
	assert.Equal(t, "hi", doc.TOC[0].ID)
	assert.Len(t, doc.Elements, 2)
	assert.Contains(t, out.String(), `"tag": "h1"`)
}

func TestTOCCommand(t *testing.T) {
	fsys := testFs(t, map[string]string{
		"doc.md": "# One\n\n## Two\n",
	})

	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"toc", "doc.md"}, fsys, &out, &errOut))

	var doc tocDocument
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.TOC, 2)
	assert.Equal(t, "one", doc.TOC[0].ID)
	assert.Equal(t, 2, doc.TOC[1].Level)
	assert.NotContains(t, out.String(), `"elements"`)
}

func TestWordsCommand(t *testing.T) {
	fsys := testFs(t, map[string]string{
		"doc.md": "# Hi\n\nhello **world**\n",
	})

	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"words", "doc.md"}, fsys, &out, &errOut))

	var doc wordsDocument
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, 3, doc.Words)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	fsys := testFs(t, map[string]string{
		"cfg.yaml": "unwrap_sole_image: true\n",
		"doc.md":   "![just an image](img.png)\n",
	})

	t.Run("config_file_applies", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, run([]string{"render", "--config", "cfg.yaml", "doc.md"}, fsys, &out, &errOut))
		assert.Contains(t, out.String(), `"tag": "img"`)
		assert.NotContains(t, out.String(), `"tag": "p"`)
	})

	t.Run("flag_overrides_config", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, run([]string{"render", "--config", "cfg.yaml", "--unwrap-sole-image=false", "doc.md"}, fsys, &out, &errOut))
		assert.Contains(t, out.String(), `"tag": "p"`)
	})
}

func TestRenderMissingFileFails(t *testing.T) {
	fsys := testFs(t, map[string]string{})

	var out, errOut bytes.Buffer
	err := run([]string{"render", "absent.md"}, fsys, &out, &errOut)
	assert.ErrorContains(t, err, "no such file")
}
