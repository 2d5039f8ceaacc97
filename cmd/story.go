package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// storyCmd は、物語の生成（Phase 1）だけを実行するサブコマンドなのだ。
// 挿絵生成をスキップして、物語のJSONだけを手元で確認・修正したい場合に便利なのだ。
var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "道徳テーマから物語だけを生成してJSONで保存するのだ。",
	Long: `道徳テーマと登場人物から子ども向けの物語を生成し、タイトルとシーン一覧を
JSONファイルとして保存するのだ。挿絵の生成は行わないのだよ。`,
	Example: "  storybook story -m kindness -c Riko,Taro -o output",
	RunE:    storyCommand,
}

// storyCommand は、story サブコマンドの実行ロジック本体なのだ。
func storyCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 必須チェック
	if opts.MoralValue == "" {
		return fmt.Errorf("道徳テーマ（--moral）を指定してほしいのだ")
	}
	if len(opts.CharacterNames) == 0 {
		return fmt.Errorf("登場人物（--characters）を1人以上指定してほしいのだ")
	}

	// 設定のロードとオプションの反映
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.Options = opts

	slog.Info("物語生成モードを起動するのだ！",
		"moral", opts.MoralValue,
		"characters", opts.CharacterNames,
		"text_model", cfg.GeminiModel,
		"output", opts.OutputDir)

	if err := pipeline.ExecuteStoryOnly(ctx, cfg); err != nil {
		return fmt.Errorf("物語の生成に失敗したのだ: %w", err)
	}

	slog.Info("完了なのだ！素敵な物語ができあがったのだよ。")
	return nil
}
