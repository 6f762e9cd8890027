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

package web

import "github.com/ecodeclub/qcmbank/internal/material/internal/domain"

type ModuleContextFile struct {
	Id       int64  `json:"id"`
	ModuleId int64  `json:"moduleId"`
	Filename string `json:"filename"`
	Url      string `json:"url"`
	Size     int64  `json:"size"`
	Utime    int64  `json:"utime"`
}

func newModuleContextFile(f domain.ModuleContextFile) ModuleContextFile {
	return ModuleContextFile{
		Id:       f.Id,
		ModuleId: f.ModuleId,
		Filename: f.Filename,
		Url:      f.Url,
		Size:     f.Size,
		Utime:    f.Utime,
	}
}

func (f ModuleContextFile) toDomain() domain.ModuleContextFile {
	return domain.ModuleContextFile{
		Id:       f.Id,
		ModuleId: f.ModuleId,
		Filename: f.Filename,
		Url:      f.Url,
		Size:     f.Size,
	}
}

type SaveFileReq struct {
	File ModuleContextFile `json:"file"`
}

type ListFilesReq struct {
	ModuleId int64 `json:"moduleId"`
}

type ListFilesResp struct {
	Files []ModuleContextFile `json:"files"`
}

type DeleteFileReq struct {
	Id int64 `json:"id"`
}

type ExtractResp struct {
	Text   string `json:"text"`
	Length int    `json:"length"`
}

type SyncReq struct {
	ModuleId int64 `json:"moduleId"`
}
