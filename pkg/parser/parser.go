package parser

import (
	"fmt"
	"strings"

	"github.com/shouni/go-storybook-kit/pkg/domain"
)

const (
	// titlePrefix は1行目に要求されるタイトル行の接頭辞です。
	titlePrefix = "Title:"

	// sceneMarkerPrefix はシーン区切り行の接頭辞です（例: "[Scene 1]"）。
	sceneMarkerPrefix = "[Scene"

	// maxWordCount は受け入れ上限の語数です。
	// プロンプトが指示する 150〜200 語よりも意図的に緩い上限なのだ。
	maxWordCount = 500
)

// Validate は生成テキストに2つの粗い受け入れ基準を適用します。
// (1) 語数が maxWordCount を超えないこと（ちょうど maxWordCount は合格）。
// (2) シーンマーカーの接頭辞を少なくとも1つ含むこと。
// 不合格は domain.ErrInvalidStory にラップして返します。
func Validate(raw string) error {
	if n := len(strings.Fields(raw)); n > maxWordCount {
		return fmt.Errorf("%w: 語数 %d が上限 %d を超えています", domain.ErrInvalidStory, n, maxWordCount)
	}
	if !strings.Contains(raw, sceneMarkerPrefix) {
		return fmt.Errorf("%w: シーンマーカー %q が見つかりません", domain.ErrInvalidStory, sceneMarkerPrefix)
	}
	return nil
}

// Parse は受け入れ済みのテキストをタイトルとシーン列に分解します。
//
// 1行目は titlePrefix を取り除いてタイトルとします。2行目以降はシーンマーカー行で
// 区切りながら走査し、マーカー行（トリム後の形、角括弧ごと）をキーに、次のマーカー
// または末尾までの非空行の連結（トリム済み）を本文として積みます。最初のマーカーより
// 前に現れた行は捨てられます。
//
// 末尾のマーカー直後に本文が1行も無い場合、そのシーンは記録されません。
// 先行マーカーは次のマーカー到達時に本文が空でも確定されるのと非対称ですが、
// 既存の出力仕様として固定されています（回帰テストでピン留め）。
func Parse(raw string) domain.Story {
	lines := strings.Split(raw, "\n")

	story := domain.Story{RawText: raw}
	if len(lines) > 0 {
		story.Title = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[0]), titlePrefix))
		lines = lines[1:]
	}

	var currentMarker string
	var currentBody []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, sceneMarkerPrefix) {
			if currentMarker != "" {
				story.Scenes.Upsert(currentMarker, strings.TrimSpace(strings.Join(currentBody, "\n")))
			}
			currentMarker = trimmed
			currentBody = nil
			continue
		}

		// マーカーが開く前の行は黙って読み捨てる
		if trimmed != "" && currentMarker != "" {
			currentBody = append(currentBody, line)
		}
	}

	// 本文が空のままの末尾シーンは確定しない
	if currentMarker != "" && len(currentBody) > 0 {
		story.Scenes.Upsert(currentMarker, strings.TrimSpace(strings.Join(currentBody, "\n")))
	}

	return story
}
