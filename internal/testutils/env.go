package testutils

import (
	"os"
	"testing"
)

// SetEnv 设置环境变量并在测试结束时恢复原值
func SetEnv(t *testing.T, key, value string) {
	t.Helper()

	previous, existed := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("设置环境变量 %s 失败: %v", key, err)
	}
	t.Cleanup(func() {
		if existed {
			os.Setenv(key, previous)
		} else {
			os.Unsetenv(key)
		}
	})
}
