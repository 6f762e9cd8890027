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
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc     service.Service
	contSvc service.ContributionService
	voteSvc service.VoteService
	logger  *elog.Component
}

func NewHandler(svc service.Service,
	contSvc service.ContributionService,
	voteSvc service.VoteService) *Handler {
	return &Handler{
		svc:     svc,
		contSvc: contSvc,
		voteSvc: voteSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/explanation/submit", ginx.BS[SubmitReq](h.Submit))
	server.POST("/explanation/detail", ginx.B[Eid](h.Detail))
	server.POST("/explanation/list", ginx.BS[Qid](h.ListByQuestion))
	server.POST("/explanation/mine", ginx.BS[Page](h.Mine))
	server.POST("/explanation/update", ginx.BS[UpdateReq](h.Update))
	server.POST("/explanation/delete", ginx.BS[Eid](h.Delete))
	server.POST("/explanation/vote", ginx.BS[VoteReq](h.Vote))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) Submit(ctx *ginx.Context,
	req SubmitReq,
	sess session.Session) (ginx.Result, error) {
	created, remaining, err := h.contSvc.Submit(ctx, req.toDomain(sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrCapacityExceeded):
		return capacityExceededResult, nil
	case errors.Is(err, service.ErrDuplicateContribution):
		return duplicateContributionResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SubmitResp{
			Explanation:    newExplanation(created),
			RemainingSlots: remaining,
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req Eid) (ginx.Result, error) {
	detail, err := h.svc.Detail(ctx, req.Eid)
	if errors.Is(err, service.ErrExplanationNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newExplanation(detail),
	}, nil
}

func (h *Handler) ListByQuestion(ctx *ginx.Context,
	req Qid,
	sess session.Session) (ginx.Result, error) {
	data, votes, err := h.svc.ListByQuestion(ctx, req.Qid, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: QuestionExplanations{
			Explanations: slice.Map(data, func(idx int, src domain.Explanation) Explanation {
				vo := newExplanation(src)
				if v, ok := votes[src.Id]; ok {
					vo.MyVote = v.Direction.String()
				}
				return vo
			}),
		},
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context,
	req Page,
	sess session.Session) (ginx.Result, error) {
	data, err := h.svc.ListByAuthor(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(data, func(idx int, src domain.Explanation) Explanation {
			return newExplanation(src)
		}),
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context,
	req UpdateReq,
	sess session.Session) (ginx.Result, error) {
	err := h.svc.Update(ctx, domain.Explanation{
		Id:          req.Id,
		Uid:         sess.Claims().Uid,
		Title:       req.Title,
		Content:     req.Content,
		Images:      req.Images,
		DocumentUrl: req.DocumentUrl,
	})
	switch {
	case errors.Is(err, service.ErrExplanationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrNotEditable):
		return notAuthorResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Delete(ctx *ginx.Context,
	req Eid,
	sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Eid, sess.Claims().Uid)
	if errors.Is(err, service.ErrExplanationNotFound) {
		return notFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Vote(ctx *ginx.Context,
	req VoteReq,
	sess session.Session) (ginx.Result, error) {
	res, err := h.voteSvc.Vote(ctx, req.Eid, sess.Claims().Uid, domain.Direction(req.Direction))
	var levelErr *service.ErrInsufficientLevel
	switch {
	case errors.Is(err, service.ErrRedundantVote):
		return redundantVoteResult, nil
	case errors.As(err, &levelErr):
		return ginx.Result{
			Code: errs.InsufficientLevelError.Code,
			Msg:  errs.InsufficientLevelError.Msg,
			Data: map[string]int64{
				"required": levelErr.Required,
				"current":  levelErr.Current,
			},
		}, nil
	case errors.Is(err, service.ErrExplanationNotFound):
		return notFoundResult, nil
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: VoteResp{
			Upvotes:   res.Upvotes,
			Downvotes: res.Downvotes,
			Weight:    res.Weight,
		},
	}, nil
}
