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

package explanation

import (
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/domain"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/service"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/web"
)

type Handler = web.Handler
type AdminHandler = web.AdminHandler

type Service = service.Service
type ContributionService = service.ContributionService
type VoteService = service.VoteService
type GenerationService = service.GenerationService

type Explanation = domain.Explanation
type Vote = domain.Vote
type VoteResult = domain.VoteResult
type Status = domain.Status
type Language = domain.Language
type Direction = domain.Direction

const (
	StatusPending  = domain.StatusPending
	StatusApproved = domain.StatusApproved
	StatusRejected = domain.StatusRejected

	DirectionUp   = domain.DirectionUp
	DirectionDown = domain.DirectionDown
)

var (
	ErrCapacityExceeded      = service.ErrCapacityExceeded
	ErrDuplicateContribution = service.ErrDuplicateContribution
	ErrRedundantVote         = service.ErrRedundantVote
	ErrAlreadyGenerated      = service.ErrAlreadyGenerated
)
