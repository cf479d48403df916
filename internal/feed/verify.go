// =============================================================================
// verify.go - 生成済みフィードの検証
// =============================================================================
//
// このファイルは書き込み済みのAtomフィードをgofeedで再パースし、
// フィードリーダーから見て妥当なドキュメントになっているかを確認します。
// gofeed ライブラリを使用してRSS/Atomフィードを解析します。
//
// =============================================================================
package feed

import (
	"fmt"
	"os"

	"github.com/mmcdole/gofeed"
)

// VerifyFeedFile は生成済みフィードファイルを再パースしてエントリ数を返す
//
// パースに失敗した場合はエラーを返す（書き込み自体は成功しているため、
// 呼び出し側は警告として扱う）。
func VerifyFeedFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	parsed, err := gofeed.NewParser().Parse(f)
	if err != nil {
		return 0, fmt.Errorf("feed parse failed for %s: %w", path, err)
	}
	return len(parsed.Items), nil
}
