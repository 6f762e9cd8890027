package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcmbank/internal/pkg/mqx"
)

type ExplanationApprovedEventProducer = mqx.Producer[ExplanationApprovedEvent]

func NewExplanationApprovedEventProducer(q mq.MQ) (ExplanationApprovedEventProducer, error) {
	return mqx.NewGeneralProducer[ExplanationApprovedEvent](q, ExplanationApprovedEvents)
}
