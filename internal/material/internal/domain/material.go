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

package domain

// ModuleContextFile 课程模块下的上下文文件
// 文件本体放在外部存储，这里只记录 url
type ModuleContextFile struct {
	Id       int64
	ModuleId int64
	Filename string
	Url      string
	Size     int64
	Utime    int64
}

// UploadedDocument 调用方临时上传的文档，不落库
type UploadedDocument struct {
	Filename string
	Data     []byte
}
