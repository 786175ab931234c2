package ies

import (
	"errors"
)

var (
	// ErrRetrieval: 网络失败或者响应内容无法解析
	ErrRetrieval = errors.New("retrieval failed")

	// ErrMissingField: 远端文档缺少必要字段
	ErrMissingField = errors.New("required field missing")
)
