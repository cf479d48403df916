// =============================================================================
// utils.go - ユーティリティ関数
// =============================================================================
//
// このファイルはシステム全体で使用する汎用的なヘルパー関数を提供します。
//
// 【このファイルで提供する機能】
//   - ログ出力: 警告・情報・エラーメッセージの出力（stderr）
//   - JSON操作: 抽出結果の診断用ダンプ
//
// 【注意】標準出力はデータ用に予約されているため、ログは全てstderrに出力する
//
// =============================================================================
package feed

import (
	"encoding/json"
	"fmt"
	"os"
)

// Warnf は警告メッセージを標準エラー出力に書き出す
//
// フォーマット: "WARN: メッセージ\n"
func Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN: "+format+"\n", args...)
}

// Infof は情報メッセージを標準エラー出力に書き出す
//
// フォーマット: "INFO: メッセージ\n"
func Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO: "+format+"\n", args...)
}

// Errorf はエラーメッセージを標準エラー出力に書き出す
//
// 【注意】この関数はログ出力のみでプログラムは終了しない
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
}

// WriteJSONFile は任意のデータをJSON形式でファイルに保存する
//
// 2スペースインデントの読みやすい形式で出力する。
// -saveEntries フラグで抽出結果を診断用にダンプする際に使用。
func WriteJSONFile(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
