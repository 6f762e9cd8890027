package reward

import (
	"github.com/ecodeclub/qcmbank/internal/reward/internal/event"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/web"
)

type Module struct {
	Svc Service
	Hdl *web.Handler
	C   *event.MQConsumer
}
