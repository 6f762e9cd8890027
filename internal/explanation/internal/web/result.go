package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/qcmbank/internal/explanation/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInputError.Code,
		Msg:  errs.InvalidInputError.Msg,
	}
	capacityExceededResult = ginx.Result{
		Code: errs.CapacityExceededError.Code,
		Msg:  errs.CapacityExceededError.Msg,
	}
	duplicateContributionResult = ginx.Result{
		Code: errs.DuplicateContribution.Code,
		Msg:  errs.DuplicateContribution.Msg,
	}
	redundantVoteResult = ginx.Result{
		Code: errs.RedundantVoteError.Code,
		Msg:  errs.RedundantVoteError.Msg,
	}
	emptyGenerationResult = ginx.Result{
		Code: errs.EmptyGenerationError.Code,
		Msg:  errs.EmptyGenerationError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ExplanationNotFoundError.Code,
		Msg:  errs.ExplanationNotFoundError.Msg,
	}
	notAuthorResult = ginx.Result{
		Code: errs.NotAuthorError.Code,
		Msg:  errs.NotAuthorError.Msg,
	}
	statusSettledResult = ginx.Result{
		Code: errs.StatusSettledError.Code,
		Msg:  errs.StatusSettledError.Msg,
	}
)
