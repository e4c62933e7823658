package utils_test

import (
	"strings"
	"testing"

	"github.com/crumpledflowers/vault-guard-cli/internal/utils"
)

func TestMakeAndVerifyCaptcha(t *testing.T) {
	id, b64s, answer, err := utils.MakeCaptcha()
	if err != nil {
		t.Fatalf("生成验证码失败: %v", err)
	}
	if id == "" || answer == "" {
		t.Fatal("验证码 id 和答案不应为空")
	}
	if !strings.HasPrefix(b64s, "data:image/") {
		t.Errorf("图片应为 data URL，实际为 %.30s", b64s)
	}

	if !utils.VerifyCaptcha(id, answer) {
		t.Error("正确答案应校验通过")
	}
	// 校验时清除，同一验证码不能复用
	if utils.VerifyCaptcha(id, answer) {
		t.Error("验证码不应可重复使用")
	}
}

func TestVerifyCaptchaWrongAnswer(t *testing.T) {
	id, _, answer, err := utils.MakeCaptcha()
	if err != nil {
		t.Fatalf("生成验证码失败: %v", err)
	}

	wrong := "0000"
	if wrong == answer {
		wrong = "1111"
	}
	if utils.VerifyCaptcha(id, wrong) {
		t.Error("错误答案不应校验通过")
	}
}
