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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/qcmbank/internal/material/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/material/internal/repository/dao"
)

// ModuleContextFileRepository 模块上下文文件的仓库接口
type ModuleContextFileRepository interface {
	Save(ctx context.Context, f domain.ModuleContextFile) (int64, error)
	FindByModule(ctx context.Context, moduleId int64) ([]domain.ModuleContextFile, error)
	ModuleIds(ctx context.Context) ([]int64, error)
	Delete(ctx context.Context, id int64) error
}

type moduleContextFileRepository struct {
	dao dao.ModuleContextFileDAO
}

func NewModuleContextFileRepository(d dao.ModuleContextFileDAO) ModuleContextFileRepository {
	return &moduleContextFileRepository{dao: d}
}

func (r *moduleContextFileRepository) Save(ctx context.Context, f domain.ModuleContextFile) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(f))
}

func (r *moduleContextFileRepository) FindByModule(ctx context.Context, moduleId int64) ([]domain.ModuleContextFile, error) {
	files, err := r.dao.FindByModule(ctx, moduleId)
	if err != nil {
		return nil, err
	}
	return slice.Map(files, func(_ int, src dao.ModuleContextFile) domain.ModuleContextFile {
		return r.toDomain(src)
	}), nil
}

func (r *moduleContextFileRepository) ModuleIds(ctx context.Context) ([]int64, error) {
	return r.dao.ModuleIds(ctx)
}

func (r *moduleContextFileRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *moduleContextFileRepository) toDomain(f dao.ModuleContextFile) domain.ModuleContextFile {
	return domain.ModuleContextFile{
		Id:       f.Id,
		ModuleId: f.ModuleId,
		Filename: f.Filename,
		Url:      f.Url,
		Size:     f.Size,
		Utime:    f.Utime,
	}
}

func (r *moduleContextFileRepository) toEntity(f domain.ModuleContextFile) dao.ModuleContextFile {
	return dao.ModuleContextFile{
		Id:       f.Id,
		ModuleId: f.ModuleId,
		Filename: f.Filename,
		Url:      f.Url,
		Size:     f.Size,
	}
}
