package question

import "github.com/ecodeclub/qcmbank/internal/question/internal/web"

type Module struct {
	Svc      Service
	ExamSvc  ExamService
	AdminHdl *web.AdminHandler
}
