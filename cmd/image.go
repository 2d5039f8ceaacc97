package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// imageCmd は、挿絵リクエストJSONを読み込んで1シーン分の挿絵生成を実行するサブコマンドなのだ。
// 物語生成をスキップして、挿絵の再生成や調整を行いたい場合に便利なのだ。
var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "挿絵リクエストJSONから1シーン分の挿絵を生成するのだ。",
	Long: `シーン描写・登場キャラクター・外見定義を記したJSONファイルを読み込み、
Monster API で挿絵を1枚生成して成果物のURLを表示するのだ。`,
	Example: "  storybook image -f examples/image_request.json",
	RunE:    imageCommand,
}

// imageCommand は、image サブコマンドの実行ロジック本体なのだ。
func imageCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// --request-file がユーザーによって指定されなかった場合、
	// imageコマンド固有のデフォルト値を設定する
	if !cmd.Flags().Changed("request-file") {
		opts.RequestFile = "examples/image_request.json"
	}

	// 必須となる入力ファイルの存在チェック
	if opts.RequestFile == "" {
		return fmt.Errorf("読み込むJSONファイル（--request-file）を指定してほしいのだ")
	}

	// Monster APIを利用するため、APIキーの存在チェックも必要なのだ
	if os.Getenv("MONSTER_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 MONSTER_API_KEY が設定されていません。挿絵の生成には必須なのだ")
	}

	// 環境変数から基本設定をロードし、コマンドライン引数の値を反映
	cfg := config.LoadConfig()
	cfg.MonsterModel = opts.ImageModel
	cfg.Options = opts

	slog.Info("挿絵生成モードを起動するのだ！",
		"input_json", cfg.Options.RequestFile,
		"image_model", cfg.MonsterModel)

	return pipeline.ExecuteImageOnly(ctx, cfg)
}
