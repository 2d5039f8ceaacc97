package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-storybook-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は CLI フラグの値を集約する実行時オプションなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- 物語生成関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.MoralValue, "moral", "m", "", "物語が伝える道徳テーマなのだ（例: honesty）。")
	rootCmd.PersistentFlags().StringSliceVarP(&opts.CharacterNames, "characters", "c", nil, "登場人物の名前リストなのだ（カンマ区切り）。")
	rootCmd.PersistentFlags().IntVar(&opts.MaxAttempts, "max-attempts", config.DefaultMaxAttempts, "物語生成の試行回数の上限なのだ。")

	// --- 挿絵生成関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.RequestFile, "request-file", "f", "", "挿絵リクエスト（JSON）のパスなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.DescriptionsFile, "descriptions", "d", "examples/descriptions.json", "キャラクターの外見定義を記したJSONパスなのだ。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "保存先ディレクトリ（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.EnableHTML, "html", false, "Markdownに加えてHTML版の絵本も出力するのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "使用する Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "使用する Monster API モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.RateInterval, "rate-interval", config.DefaultRateInterval, "一括挿絵生成のリクエスト間隔なのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"storybook",
		addAppFlags,
		preRunAppE,
		generateCmd,
		storyCmd,
		imageCmd,
	)
}
