package workflow

import (
	"time"
)

// デフォルト値の定義なのだ
const (
	DefaultGeminiModel    = "gemini-3-flash-preview"
	DefaultImageModel     = "txt2img"
	DefaultMonsterBaseURL = "https://api.monsterapi.ai/v1"
	DefaultMaxAttempts    = 3
	DefaultRateInterval   = 10 * time.Second
)

// Config は Go Storybook Kit の各コンポーネントを動作させるための基本設定なのだ。
type Config struct {
	// --- AI Model Settings ---
	GeminiAPIKey  string
	MonsterAPIKey string
	GeminiModel   string
	ImageModel    string

	// --- Generation Settings ---
	MaxAttempts    int
	RateInterval   time.Duration
	MonsterBaseURL string

	// --- Timeout & Retries ---
	RequestTimeout time.Duration
}

// NewConfig はデフォルト値で初期化された Config を作成し、必要最小限の値をセットして返すのだ。
func NewConfig(geminiAPIKey, monsterAPIKey string) Config {
	cfg := DefaultConfig()
	cfg.GeminiAPIKey = geminiAPIKey
	cfg.MonsterAPIKey = monsterAPIKey
	return cfg
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数なのだ。
func DefaultConfig() Config {
	return Config{
		GeminiModel:    DefaultGeminiModel,
		ImageModel:     DefaultImageModel,
		MonsterBaseURL: DefaultMonsterBaseURL,
		MaxAttempts:    DefaultMaxAttempts,
		RateInterval:   DefaultRateInterval,
		RequestTimeout: 5 * time.Minute,
	}
}
