package explanation

import "github.com/ecodeclub/qcmbank/internal/explanation/internal/web"

type Module struct {
	Svc      Service
	ContSvc  ContributionService
	VoteSvc  VoteService
	GenSvc   GenerationService
	Hdl      *web.Handler
	AdminHdl *web.AdminHandler
}
