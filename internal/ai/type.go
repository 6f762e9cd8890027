package ai

import (
	"github.com/ecodeclub/qcmbank/internal/ai/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm"
	"github.com/ecodeclub/qcmbank/internal/ai/internal/service/llm/knowledge_base"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type BizConfig = domain.BizConfig
type KnowledgeBaseFile = domain.KnowledgeBaseFile
type LLMService = llm.Service
type KnowledgeBaseService = knowledge_base.RepositoryBaseSvc

const BizExplanationGenerate = domain.BizExplanationGenerate
const RepositoryBaseTypeRetrieval = domain.RepositoryBaseTypeRetrieval
