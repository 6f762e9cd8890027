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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type ModuleContextFile struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	ModuleId int64  `gorm:"not null;index:idx_module_id;comment:课程模块ID"`
	Filename string `gorm:"type:varchar(255);not null;comment:文件名"`
	Url      string `gorm:"type:varchar(512);not null;comment:文件在外部存储上的地址"`
	Size     int64  `gorm:"comment:文件大小，字节"`
	Ctime    int64
	Utime    int64
}

func (ModuleContextFile) TableName() string {
	return "module_context_files"
}

// ModuleContextFileDAO 模块上下文文件的数据访问操作
type ModuleContextFileDAO interface {
	Save(ctx context.Context, f ModuleContextFile) (int64, error)
	FindByModule(ctx context.Context, moduleId int64) ([]ModuleContextFile, error)
	// ModuleIds 所有存在上下文文件的模块
	ModuleIds(ctx context.Context) ([]int64, error)
	Delete(ctx context.Context, id int64) error
}

type GORMModuleContextFileDAO struct {
	db *egorm.Component
}

func NewGORMModuleContextFileDAO(db *egorm.Component) ModuleContextFileDAO {
	return &GORMModuleContextFileDAO{db: db}
}

func (g *GORMModuleContextFileDAO) Save(ctx context.Context, f ModuleContextFile) (int64, error) {
	now := time.Now().UnixMilli()
	f.Ctime = now
	f.Utime = now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"filename", "url", "size", "utime",
		}),
	}).Create(&f).Error
	return f.Id, err
}

func (g *GORMModuleContextFileDAO) FindByModule(ctx context.Context, moduleId int64) ([]ModuleContextFile, error) {
	var res []ModuleContextFile
	err := g.db.WithContext(ctx).
		Where("module_id = ?", moduleId).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMModuleContextFileDAO) ModuleIds(ctx context.Context) ([]int64, error) {
	var res []int64
	err := g.db.WithContext(ctx).Model(&ModuleContextFile{}).
		Distinct("module_id").
		Order("module_id ASC").
		Pluck("module_id", &res).Error
	return res, err
}

func (g *GORMModuleContextFileDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&ModuleContextFile{}).Error
}
