package workflow

import (
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	t.Run("APIキーと推奨デフォルトが揃った設定になること", func(t *testing.T) {
		cfg := NewConfig("gemini-key", "monster-key")

		if cfg.GeminiAPIKey != "gemini-key" || cfg.MonsterAPIKey != "monster-key" {
			t.Error("APIキーがセットされていないのだ")
		}
		if cfg.GeminiModel != DefaultGeminiModel {
			t.Errorf("テキストモデルの既定値が違うのだ: %q", cfg.GeminiModel)
		}
		if cfg.ImageModel != DefaultImageModel {
			t.Errorf("画像モデルの既定値が違うのだ: %q", cfg.ImageModel)
		}
		if cfg.MaxAttempts != DefaultMaxAttempts {
			t.Errorf("試行回数の既定値が違うのだ: %d", cfg.MaxAttempts)
		}
		if cfg.RateInterval != DefaultRateInterval {
			t.Errorf("リクエスト間隔の既定値が違うのだ: %v", cfg.RateInterval)
		}
		if cfg.RequestTimeout != 5*time.Minute {
			t.Errorf("タイムアウトの既定値が違うのだ: %v", cfg.RequestTimeout)
		}
	})
}
