// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package extractor

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractDocx(t *testing.T) {
	t.Parallel()
	e := New()

	t.Run("段落和文本节点", func(t *testing.T) {
		data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Première ligne</w:t></w:r></w:p>
    <w:p><w:r><w:t>Deuxième </w:t></w:r><w:r><w:t>ligne</w:t></w:r></w:p>
  </w:body>
</w:document>`)
		text, err := e.Extract("cours.docx", data)
		require.NoError(t, err)
		assert.Equal(t, "Première ligne\nDeuxième ligne", text)
	})

	t.Run("忽略非文本节点", func(t *testing.T) {
		data := buildDocx(t, `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t>visible</w:t></w:r></w:p>
  </w:body>
</w:document>`)
		text, err := e.Extract("a.docx", data)
		require.NoError(t, err)
		assert.Equal(t, "visible", text)
	})

	t.Run("不是合法的 zip", func(t *testing.T) {
		_, err := e.Extract("broken.docx", []byte("not a zip"))
		assert.Error(t, err)
	})

	t.Run("缺少 document.xml", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create("word/other.xml")
		require.NoError(t, err)
		_, err = w.Write([]byte("<x/>"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		_, err = e.Extract("empty.docx", buf.Bytes())
		assert.Error(t, err)
	})
}

func TestExtractPlain(t *testing.T) {
	t.Parallel()
	e := New()
	text, err := e.Extract("notes.txt", []byte("bonjour"))
	require.NoError(t, err)
	assert.Equal(t, "bonjour", text)

	text, err = e.Extract("README.md", []byte("# titre"))
	require.NoError(t, err)
	assert.Equal(t, "# titre", text)
}

func TestExtractUnsupported(t *testing.T) {
	t.Parallel()
	e := New()
	_, err := e.Extract("archive.pdf", []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	// 大小写不敏感
	_, err = e.Extract("COURS.DOCX", buildDocx(t, `<w:document xmlns:w="x"><w:p><w:t>ok</w:t></w:p></w:document>`))
	assert.NoError(t, err)
}
