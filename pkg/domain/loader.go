package domain

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadDescriptions は指定されたファイルパスからJSONを読み込み、外見定義マップを返すのだ。
func LoadDescriptions(path string) (CharacterDescriptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("外見定義ファイルの読み込みに失敗したのだ: %w", err)
	}

	var descriptions CharacterDescriptions
	if err := json.Unmarshal(data, &descriptions); err != nil {
		return nil, fmt.Errorf("外見定義のデコードに失敗したのだ: %w", err)
	}
	return descriptions, nil
}
