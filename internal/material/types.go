package material

import (
	"github.com/ecodeclub/qcmbank/internal/material/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/material/internal/service"
	"github.com/ecodeclub/qcmbank/internal/material/internal/web"
)

type ModuleContextFile = domain.ModuleContextFile
type UploadedDocument = domain.UploadedDocument
type Service = service.Service
type KnowledgeBaseSyncService = service.KnowledgeBaseSyncService
type AdminHandler = web.AdminHandler
