package config

import (
	"strconv"
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel          = "gemini-3-flash-preview"
	DefaultImageModel     = "txt2img"
	DefaultMonsterBaseURL = "https://api.monsterapi.ai/v1"
	DefaultTemperature    = float32(0.7)
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultMaxAttempts    = 3
	DefaultRateInterval   = 10 * time.Second
	DefaultPollInterval   = 5 * time.Second
	DefaultOutputDir      = "output" // パブリッシャーで使用するデフォルト保存先なのだ
)

// Config はアプリケーション全体の環境設定（APIキーや生成パラメータ）を保持する構造体なのだ。
type Config struct {
	GeminiAPIKey   string
	MonsterAPIKey  string
	GeminiModel    string
	MonsterModel   string
	MonsterBaseURL string
	Temperature    float32

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey:   envutil.GetEnv("GEMINI_API_KEY", ""),
		MonsterAPIKey:  envutil.GetEnv("MONSTER_API_KEY", ""),
		GeminiModel:    envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		MonsterModel:   envutil.GetEnv("MONSTER_MODEL", DefaultImageModel),
		MonsterBaseURL: envutil.GetEnv("MONSTER_BASE_URL", DefaultMonsterBaseURL),
		Temperature:    loadTemperature(),
	}
	return cfg
}

// loadTemperature は環境変数から生成温度を読み込むのだ。不正な値は既定値に落ちるのだ。
func loadTemperature() float32 {
	raw := envutil.GetEnv("GEMINI_TEMPERATURE", "")
	if raw == "" {
		return DefaultTemperature
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil || v < 0 || v > 1 {
		return DefaultTemperature
	}
	return float32(v)
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// 物語生成関連
	MoralValue     string   // --moral: 物語が伝える道徳テーマ
	CharacterNames []string // --characters: 登場人物の名前リスト
	MaxAttempts    int      // --max-attempts: 物語生成の試行回数上限

	// 挿絵生成関連
	RequestFile      string // --request-file: 挿絵リクエストのJSONパス
	DescriptionsFile string // --descriptions: キャラクター外見定義のJSONパス

	// 出力関連
	OutputDir  string // --output-dir
	EnableHTML bool   // --html: Markdownに加えてHTMLも出力する

	// AI挙動設定
	AIModel    string // --model: テキスト生成用のGeminiモデル
	ImageModel string // --image-model: 画像生成用のMonsterモデル

	// 実行制御
	HTTPTimeout  time.Duration // --http-timeout
	RateInterval time.Duration // --rate-interval: 一括挿絵生成のリクエスト間隔
}
