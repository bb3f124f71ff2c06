package order

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// orderNumberPattern matches the human-readable order code:
// ORD-<yyyymmdd>-<4-digit random>-<6 lowercase hex chars>.
var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-\d{4}-[a-f0-9]{6}$`)

// generateOrderNumber builds a new order code for the given creation time.
// Uniqueness is probabilistic, not enforced: the 4-digit random part plus the
// 6 hex chars of a fresh UUID make collisions negligible for a back office.
func generateOrderNumber(now time.Time) string {
	random := 1000 + rand.Intn(9000)
	suffix := strings.ReplaceAll(kernel.NewUUID().String(), "-", "")[:6]
	return fmt.Sprintf("ORD-%s-%04d-%s", now.Format("20060102"), random, suffix)
}

// IsWellFormedOrderNumber reports whether s matches the order-number format.
func IsWellFormedOrderNumber(s string) bool {
	return orderNumberPattern.MatchString(s)
}
