package builder

import (
	"github.com/shouni/go-storybook-kit/internal/config"
	"github.com/shouni/go-storybook-kit/pkg/monster"

	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持する
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config      *config.Config          // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、モデル名など）。
	Options     config.GenerateOptions  // Optionsは、コマンドラインから渡された実行時の設定です（テーマ、出力先など）。
	Reader      remoteio.InputReader    // Readerは、外部データやリクエストファイルの読み込みに使用する入力元です。
	Writer      remoteio.OutputWriter   // Writerは、生成された内容を保存するための出力先です。
	aiClient    gemini.GenerativeModel  // aiClient はGeminiの通信に使う共通クライアント
	imageClient *monster.Client         // imageClient はMonster APIとの通信に使う共通クライアント
	httpClient  httpkit.HTTPClient // httpClient は外部APIとの通信に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成する
func NewAppContext(
	cfg *config.Config,
	httpClient httpkit.HTTPClient,
	aiClient gemini.GenerativeModel,
	imageClient *monster.Client,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
) AppContext {
	return AppContext{
		Config:      cfg,
		Options:     cfg.Options,
		aiClient:    aiClient,
		imageClient: imageClient,
		httpClient:  httpClient,
		Reader:      reader,
		Writer:      writer,
	}
}
