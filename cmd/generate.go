package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、物語・挿絵・絵本の組版までの全工程を実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "AIに絵本（物語と挿絵）を一括生成させるのだ。",
	Long: `道徳テーマと登場人物から子ども向けの物語を生成し、各シーンの挿絵を作り、
Markdown（必要ならHTML）の絵本として保存するのだ。`,
	Example: "  storybook generate -m honesty -c Riko,Taro -d examples/descriptions.json -o output",
	RunE:    generateCommand,
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.MoralValue == "" {
		return fmt.Errorf("道徳テーマ（--moral）を指定してほしいのだ")
	}
	if len(opts.CharacterNames) == 0 {
		return fmt.Errorf("登場人物（--characters）を1人以上指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.MonsterModel = opts.ImageModel
	cfg.Options = opts

	slog.Info("絵本生成パイプラインを起動するのだ！",
		"moral", opts.MoralValue,
		"characters", opts.CharacterNames,
		"text_model", cfg.GeminiModel,
		"image_model", cfg.MonsterModel,
		"output", opts.OutputDir)

	// 3. 更新した config を考慮しつつパイプラインを実行するのだ
	if err := pipeline.Execute(ctx, cfg); err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
