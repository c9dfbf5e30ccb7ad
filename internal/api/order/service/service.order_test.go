package ordersvc

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderCodePattern = regexp.MustCompile(`^ORD-\d{13,}-\d{4}$`)

func TestGenerateOrderCode_Format(t *testing.T) {
	code := GenerateOrderCode()
	assert.Regexp(t, orderCodePattern, code)
}

func TestGenerateOrderCode_UniqueUnderBurst(t *testing.T) {
	const n = 2000
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		code := GenerateOrderCode()
		require.False(t, seen[code], "mã đơn bị trùng: %s", code)
		seen[code] = true
	}
}
