package ali_deepseek

import (
	"context"
	"math"

	"github.com/ecodeclub/qcmbank/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	baseUrl = "https://dashscope.aliyuncs.com/compatible-mode/v1/"

	// Platform 平台标识，落到解析记录里
	Platform = "ali_deepseek"

	pingModel = "deepseek-v3"
)

type Handler struct {
	client *openai.Client
}

func NewHandler(apikey string) *Handler {
	client := openai.NewClient(
		option.WithBaseURL(baseUrl),
		option.WithAPIKey(apikey),
	)
	return &Handler{
		client: client,
	}
}

func (h *Handler) Name() string {
	return Platform
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.Config.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt()))
	completion, err := h.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F(messages),
		Model:    openai.F(req.Config.Model),
	})
	if err != nil {
		return domain.LLMResponse{}, err
	}
	tokens := completion.Usage.TotalTokens
	amt := math.Ceil(float64(tokens*req.Config.Price) / float64(1000))
	resp := domain.LLMResponse{
		Tokens:   tokens,
		Amount:   int64(amt),
		Platform: Platform,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

// Ping 发一个最小的请求确认平台可达
func (h *Handler) Ping(ctx context.Context) error {
	_, err := h.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage("ping"),
		}),
		Model: openai.F(pingModel),
	})
	return err
}
