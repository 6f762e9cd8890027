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
	"errors"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("不支持的文件格式")

// Extractor 把二进制文档变成纯文本
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

// New 按扩展名分发的提取器
func New() Extractor {
	return &composite{
		byExt: map[string]Extractor{
			".docx": &docxExtractor{},
			".txt":  &plainExtractor{},
			".md":   &plainExtractor{},
		},
	}
}

type composite struct {
	byExt map[string]Extractor
}

func (c *composite) Extract(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	e, ok := c.byExt[ext]
	if !ok {
		return "", ErrUnsupportedFormat
	}
	return e.Extract(filename, data)
}

type plainExtractor struct{}

func (p *plainExtractor) Extract(_ string, data []byte) (string, error) {
	return string(data), nil
}
