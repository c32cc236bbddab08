package safe

import (
	"log/slog"
	"runtime/debug"
)

// Run 在獨立 goroutine 場景下包住 fn，panic 轉為錯誤日誌而不是讓進程掛掉。
func Run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic recovered",
				slog.Any("recover", r),
				slog.String("component", "safe.Run"),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	fn()
}
