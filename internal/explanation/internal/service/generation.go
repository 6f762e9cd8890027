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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/qcmbank/internal/ai"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/repository"
	"github.com/ecodeclub/qcmbank/internal/material"
	"github.com/ecodeclub/qcmbank/internal/question"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"gorm.io/gorm"
)

var (
	// ErrAlreadyGenerated AI 位已经有解析了，返回时同时带上已有记录
	ErrAlreadyGenerated = errors.New("该题目已有 AI 解析")
	ErrEmptyGeneration  = errors.New("AI 返回了空解析")
	ErrProvider         = errors.New("AI 平台调用失败")
)

// GenerationConfig 生成相关的可调参数
type GenerationConfig struct {
	// 单次生成的超时
	Timeout time.Duration `yaml:"timeout"`
	// 整个批量任务的超时，0 表示不限制
	BatchTimeout time.Duration `yaml:"batchTimeout"`
	// 批量生成两次调用之间的间隔，对外部平台限流
	Delay time.Duration `yaml:"delay"`
}

type GenerateReq struct {
	Qid int64
	// 发起生成的管理员
	Uid          int64
	Language     domain.Language
	CustomPrompt string
	// 显式传入的上下文优先于 ModuleId
	Context  string
	ModuleId int64
}

type BatchReq struct {
	Target       question.Target
	Uid          int64
	NumberSpec   string
	Language     domain.Language
	CustomPrompt string
	Context      string
	ModuleId     int64
}

type BatchResult struct {
	Saved        int
	Failed       int
	Explanations []domain.Explanation
	Errors       []string
	NotFound     []int
}

//go:generate mockgen -source=./generation.go -destination=../../mocks/generation.mock.go -package=expmocks -typed=true GenerationService
type GenerationService interface {
	// Generate 已有 AI 解析时返回已有记录和 ErrAlreadyGenerated
	Generate(ctx context.Context, req GenerateReq) (domain.Explanation, error)
	// GenerateBatch 串行处理，单条失败不影响后续
	GenerateBatch(ctx context.Context, req BatchReq) (BatchResult, error)
	// Ping 探测 AI 平台是否可达
	Ping(ctx context.Context) bool
}

type generationService struct {
	repo        repository.Repository
	queSvc      question.Service
	materialSvc material.Service
	llmSvc      ai.LLMService
	cfg         GenerationConfig
	// 便于测试替换
	sleepFunc func(ctx context.Context, d time.Duration) error
	logger    *elog.Component
}

func NewGenerationService(repo repository.Repository,
	queSvc question.Service,
	materialSvc material.Service,
	llmSvc ai.LLMService,
	cfg GenerationConfig) GenerationService {
	return &generationService{
		repo:        repo,
		queSvc:      queSvc,
		materialSvc: materialSvc,
		llmSvc:      llmSvc,
		cfg:         cfg,
		sleepFunc:   sleepWithCtx,
		logger:      elog.DefaultLogger.With(elog.FieldComponent("explanation.GenerationService")),
	}
}

func sleepWithCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (s *generationService) Generate(ctx context.Context, req GenerateReq) (domain.Explanation, error) {
	existing, err := s.repo.GetAIByQid(ctx, req.Qid)
	switch {
	case err == nil:
		return existing, ErrAlreadyGenerated
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return domain.Explanation{}, err
	}
	que, err := s.queSvc.Detail(ctx, req.Qid)
	if err != nil {
		return domain.Explanation{}, fmt.Errorf("查找题目失败: %w", err)
	}
	contextBlob := s.resolveContext(ctx, req.Context, req.ModuleId)
	return s.generateOne(ctx, que, req.Uid, req.Language, req.CustomPrompt, contextBlob)
}

// resolveContext 显式传入的上下文优先，模块聚合失败只降级不报错
func (s *generationService) resolveContext(ctx context.Context, blob string, moduleId int64) string {
	if blob != "" || moduleId == 0 {
		return blob
	}
	res, err := s.materialSvc.BuildContext(ctx, moduleId, nil)
	if err != nil {
		s.logger.Warn("聚合模块上下文失败，不带上下文继续生成",
			elog.Int64("moduleId", moduleId),
			elog.FieldErr(err))
		return ""
	}
	return res
}

// generateOne 调平台并落库，AI 位冲突时返回赢家的记录
func (s *generationService) generateOne(ctx context.Context, que question.Question,
	uid int64, lang domain.Language, customPrompt, contextBlob string) (domain.Explanation, error) {
	// 默认法语
	if lang != domain.LanguageEN {
		lang = domain.LanguageFR
	}
	prompt := buildPrompt(que, lang, customPrompt, contextBlob)
	callCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	resp, err := s.llmSvc.Invoke(callCtx, ai.LLMRequest{
		Biz:   ai.BizExplanationGenerate,
		Uid:   uid,
		Tid:   shortuuid.New(),
		Input: []string{prompt},
	})
	if err != nil {
		return domain.Explanation{}, fmt.Errorf("%w: %s", ErrProvider, err.Error())
	}
	answer := strings.TrimSpace(resp.Answer)
	if answer == "" {
		return domain.Explanation{}, ErrEmptyGeneration
	}
	created, ok, err := s.repo.CreateAI(ctx, domain.Explanation{
		Qid:         que.Id,
		Uid:         uid,
		Content:     answer,
		Status:      domain.StatusApproved,
		AiGenerated: true,
		Provider:    resp.Platform,
		Language:    lang,
	})
	if err != nil {
		return domain.Explanation{}, err
	}
	if !ok {
		// 并发生成，别人先写进去了
		return created, ErrAlreadyGenerated
	}
	return created, nil
}

func (s *generationService) GenerateBatch(ctx context.Context, req BatchReq) (BatchResult, error) {
	var res BatchResult
	if s.cfg.BatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.BatchTimeout)
		defer cancel()
	}
	questions, err := s.queSvc.TargetQuestions(ctx, req.Target)
	if err != nil {
		return res, fmt.Errorf("解析批量目标失败: %w", err)
	}
	nums := parseNumberSpec(req.NumberSpec)
	contextBlob := s.resolveContext(ctx, req.Context, req.ModuleId)
	targets := make([]int, 0, len(nums))
	for _, n := range nums {
		if n < 1 || n > len(questions) {
			res.NotFound = append(res.NotFound, n)
			continue
		}
		targets = append(targets, n)
	}
	for i, n := range targets {
		if i > 0 {
			// 对外部平台限流
			if serr := s.sleepFunc(ctx, s.cfg.Delay); serr != nil {
				s.failRemaining(&res, targets[i:], serr)
				break
			}
		}
		if ctx.Err() != nil {
			s.failRemaining(&res, targets[i:], ctx.Err())
			break
		}
		que := questions[n-1]
		created, err := s.generateOne(ctx, que, req.Uid, req.Language, req.CustomPrompt, contextBlob)
		switch {
		case errors.Is(err, ErrAlreadyGenerated):
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("题目 %d: 已有 AI 解析", n))
		case err != nil:
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("题目 %d: %s", n, err.Error()))
		default:
			res.Saved++
			res.Explanations = append(res.Explanations, created)
		}
	}
	return res, nil
}

// failRemaining 批量超时后剩下的目标全部按失败记账，保证 Saved+Failed 对得上
func (s *generationService) failRemaining(res *BatchResult, remaining []int, err error) {
	for _, n := range remaining {
		res.Failed++
		res.Errors = append(res.Errors, fmt.Sprintf("题目 %d: %s", n, err.Error()))
	}
}

func (s *generationService) Ping(ctx context.Context) bool {
	callCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	err := s.llmSvc.Ping(callCtx)
	if err != nil {
		s.logger.Warn("AI 平台探活失败", elog.FieldErr(err))
		return false
	}
	return true
}
