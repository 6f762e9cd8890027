package llm

import (
	"context"

	"github.com/ecodeclub/qcmbank/internal/ai/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/handler"
)

//go:generate mockgen -source=./llm.go -destination=../../../mocks/llm.mock.go -package=aimocks -typed=true Service
type Service interface {
	Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error)
	// Ping 探测大模型平台是否可用
	Ping(ctx context.Context) error
}

type llmService struct {
	// 这边显示依赖 FacadeHandler
	handler handler.Handler
	pinger  handler.Pinger
}

func NewLLMService(root handler.Handler, pinger handler.Pinger) Service {
	return &llmService{
		handler: root,
		pinger:  pinger,
	}
}

func (g *llmService) Invoke(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	return g.handler.Handle(ctx, req)
}

func (g *llmService) Ping(ctx context.Context) error {
	return g.pinger.Ping(ctx)
}
