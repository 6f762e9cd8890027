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

import (
	"errors"
	"io"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/qcmbank/internal/material/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/material/internal/service"
	"github.com/ecodeclub/qcmbank/internal/material/internal/service/extractor"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AdminHandler 模块上下文文件管理端
type AdminHandler struct {
	svc     service.Service
	syncSvc service.KnowledgeBaseSyncService
	logger  *elog.Component
}

func NewAdminHandler(svc service.Service, syncSvc service.KnowledgeBaseSyncService) *AdminHandler {
	return &AdminHandler{
		svc:     svc,
		syncSvc: syncSvc,
		logger:  elog.DefaultLogger.With(elog.FieldComponent("material.web.AdminHandler")),
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/material/extract", ginx.W(h.Extract))
	server.POST("/material/save", ginx.B[SaveFileReq](h.Save))
	server.POST("/material/list", ginx.B[ListFilesReq](h.List))
	server.POST("/material/delete", ginx.B[DeleteFileReq](h.Delete))
	server.POST("/material/kb/sync", ginx.B[SyncReq](h.Sync))
}

// Extract 接收 multipart 上传，返回提取出来的纯文本
func (h *AdminHandler) Extract(ctx *ginx.Context) (ginx.Result, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return systemErrorResult, err
	}
	f, err := fh.Open()
	if err != nil {
		return systemErrorResult, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return systemErrorResult, err
	}
	text, err := h.svc.Extract(ctx, domain.UploadedDocument{
		Filename: fh.Filename,
		Data:     data,
	})
	switch {
	case errors.Is(err, extractor.ErrUnsupportedFormat):
		return unsupportedFormatResult, err
	case err != nil:
		h.logger.Error("提取文本失败",
			elog.String("filename", fh.Filename),
			elog.FieldErr(err))
		return extractionFailedResult, err
	}
	return ginx.Result{
		Data: ExtractResp{
			Text:   text,
			Length: len([]rune(text)),
		},
	}, nil
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveFileReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.File.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListFilesReq) (ginx.Result, error) {
	files, err := h.svc.List(ctx, req.ModuleId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListFilesResp{
			Files: slice.Map(files, func(_ int, src domain.ModuleContextFile) ModuleContextFile {
				return newModuleContextFile(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req DeleteFileReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "ok",
	}, nil
}

func (h *AdminHandler) Sync(ctx *ginx.Context, req SyncReq) (ginx.Result, error) {
	err := h.syncSvc.SyncModule(ctx, req.ModuleId)
	if err != nil {
		h.logger.Error("知识库同步失败", elog.FieldErr(err))
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "ok",
	}, nil
}
