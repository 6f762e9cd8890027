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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/qcmbank/internal/reward/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

type MQConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewMQConsumer(svc service.Service, q mq.MQ) (*MQConsumer, error) {
	groupID := "reward"
	consumer, err := q.Consumer(ExplanationApprovedEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &MQConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *MQConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费解析审核通过事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *MQConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt ExplanationApprovedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	err = c.svc.CreditApproval(ctx, evt.Uid, evt.Qid)
	if errors.Is(err, service.ErrDuplicatedReward) {
		// 消息重投，忽略
		c.logger.Warn("重复的奖励事件",
			elog.Int64("uid", evt.Uid), elog.Int64("qid", evt.Qid))
		return nil
	}
	return err
}
