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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/errs"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 解析管理端，审核、批量录入和 AI 生成都在这里
type AdminHandler struct {
	svc     service.Service
	contSvc service.ContributionService
	genSvc  service.GenerationService
}

func NewAdminHandler(svc service.Service,
	contSvc service.ContributionService,
	genSvc service.GenerationService) *AdminHandler {
	return &AdminHandler{
		svc:     svc,
		contSvc: contSvc,
		genSvc:  genSvc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/explanation/list", ginx.B[Page](h.List))
	server.POST("/explanation/status", ginx.B[UpdateStatusReq](h.UpdateStatus))
	server.POST("/explanation/delete", ginx.B[Eid](h.Delete))
	server.POST("/explanation/batch-create", ginx.BS[AdminBatchCreateReq](h.BatchCreate))
	server.POST("/explanation/ai/generate", ginx.BS[GenerateReq](h.Generate))
	server.POST("/explanation/ai/generate-batch", ginx.BS[GenerateBatchReq](h.GenerateBatch))
	server.POST("/explanation/ai/ping", ginx.W(h.Ping))
}

func (h *AdminHandler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	data, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ExplanationList{
			Total: total,
			Explanations: slice.Map(data, func(idx int, src domain.Explanation) Explanation {
				return newExplanation(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	status := domain.Status(req.Status)
	if status != domain.StatusApproved && status != domain.StatusRejected {
		return invalidInputResult, nil
	}
	err := h.svc.UpdateStatus(ctx, req.Eid, status)
	switch {
	case errors.Is(err, service.ErrExplanationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrStatusSettled):
		return statusSettledResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req Eid) (ginx.Result, error) {
	err := h.svc.AdminDelete(ctx, req.Eid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *AdminHandler) BatchCreate(ctx *ginx.Context,
	req AdminBatchCreateReq,
	sess session.Session) (ginx.Result, error) {
	res, err := h.contSvc.AdminSubmit(ctx, service.AdminBatchReq{
		ExamId:      req.ExamId,
		Uid:         sess.Claims().Uid,
		NumberSpec:  req.NumberSpec,
		Title:       req.Title,
		Content:     req.Content,
		Images:      req.Images,
		DocumentUrl: req.DocumentUrl,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: BatchCreateResp{
			Created:  len(res.Created),
			Errors:   res.Errors,
			NotFound: res.NotFound,
		},
	}, nil
}

func (h *AdminHandler) Generate(ctx *ginx.Context,
	req GenerateReq,
	sess session.Session) (ginx.Result, error) {
	created, err := h.genSvc.Generate(ctx, req.toDomain(sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrAlreadyGenerated):
		// 幂等，带上已有记录返回
		return ginx.Result{
			Code: errs.AlreadyGeneratedError.Code,
			Msg:  errs.AlreadyGeneratedError.Msg,
			Data: newExplanation(created),
		}, nil
	case errors.Is(err, service.ErrEmptyGeneration):
		return emptyGenerationResult, nil
	case errors.Is(err, service.ErrProvider):
		return ginx.Result{
			Code: errs.ProviderError.Code,
			Msg:  err.Error(),
		}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newExplanation(created),
	}, nil
}

func (h *AdminHandler) GenerateBatch(ctx *ginx.Context,
	req GenerateBatchReq,
	sess session.Session) (ginx.Result, error) {
	res, err := h.genSvc.GenerateBatch(ctx, req.toDomain(sess.Claims().Uid))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newGenerateBatchResp(res),
	}, nil
}

func (h *AdminHandler) Ping(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: PingResp{
			Reachable: h.genSvc.Ping(ctx),
		},
	}, nil
}
