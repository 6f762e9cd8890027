package material

import "github.com/ecodeclub/qcmbank/internal/material/internal/job"

type Module struct {
	Svc      Service
	SyncSvc  KnowledgeBaseSyncService
	AdminHdl *AdminHandler
	SyncJob  *job.KnowledgeBaseSyncJobStarter
}
