package zwords

import (
	"fmt"
	"strings"

	"github.com/torlangballe/zhist/zstr"
)

// NiceFloat converts a float to string, with only significant amount of post-comma digits
func NiceFloat(f float64, significant int) string {
	var s string
	if significant == 0 {
		s = fmt.Sprintf("%f", f)
	} else {
		format := fmt.Sprintf("%%.%df", significant)
		s = fmt.Sprintf(format, f)
	}
	if strings.ContainsRune(s, '.') {
		for zstr.HasSuffix(s, "0", &s) {
		}
		zstr.HasSuffix(s, ".", &s)
	}
	return s
}
