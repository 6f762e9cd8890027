package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/qcmbank/internal/material/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	unsupportedFormatResult = ginx.Result{
		Code: errs.UnsupportedFormatError.Code,
		Msg:  errs.UnsupportedFormatError.Msg,
	}
	extractionFailedResult = ginx.Result{
		Code: errs.ExtractionFailedError.Code,
		Msg:  errs.ExtractionFailedError.Msg,
	}
)
