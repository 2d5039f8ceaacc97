package domain

import "errors"

// 生成処理が返しうる判別可能なエラー種別です。
// リトライ方針はエラー種別ごとの明示的な判断とし、一括握りつぶしにはしません。
var (
	// ErrGenerationExhausted は規定回数の試行がすべて失敗したことを示します。
	ErrGenerationExhausted = errors.New("物語の生成が規定回数の試行で成功しませんでした")

	// ErrInvalidStory は生成テキストが受け入れ基準を満たさないことを示します（リトライ対象）。
	ErrInvalidStory = errors.New("生成された物語が受け入れ基準を満たしていません")

	// ErrMissingCharacterDescription は登場キャラクターの描写が対応表に無いことを示します。
	ErrMissingCharacterDescription = errors.New("キャラクターの外見描写が見つかりません")

	// ErrEmptyGenerationResult は画像プロバイダーが出力を1件も返さなかったことを示します。
	ErrEmptyGenerationResult = errors.New("画像プロバイダーの出力が空です")
)
