package common_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/crumpledflowers/vault-guard-cli/internal/common"
)

func TestServiceErrorRoundtrip(t *testing.T) {
	err := common.NewServiceError(common.ErrorCodeNotFound, "密码不存在")

	if err.Error() != "密码不存在" {
		t.Errorf("错误消息不符: %q", err.Error())
	}

	serviceErr, ok := common.AsServiceError(err)
	if !ok {
		t.Fatal("应能还原为 ServiceError")
	}
	if serviceErr.Code != common.ErrorCodeNotFound {
		t.Errorf("错误类别不符: %q", serviceErr.Code)
	}
}

func TestAsServiceErrorUnwrapsChain(t *testing.T) {
	inner := common.NewServiceError(common.ErrorCodeForbidden, "无权访问")
	wrapped := fmt.Errorf("处理请求: %w", inner)

	serviceErr, ok := common.AsServiceError(wrapped)
	if !ok || serviceErr.Code != common.ErrorCodeForbidden {
		t.Errorf("应穿透包装取到 ServiceError，实际为 %v", serviceErr)
	}
}

func TestAsServiceErrorPlainError(t *testing.T) {
	if _, ok := common.AsServiceError(errors.New("普通错误")); ok {
		t.Error("普通错误不应识别为 ServiceError")
	}
}
