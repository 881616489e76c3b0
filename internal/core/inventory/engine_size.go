package inventory

import (
	"strings"

	"github.com/elitemotors/storefront/internal/core/domain"
)

// engineTokens are matched as lowercase substrings of the engine
// description. "12.0L" therefore lands in small; keep it that way until
// displacement parsing is agreed on.
var engineTokens = map[domain.EngineSize][]string{
	domain.EngineSmall:  {"1.", "2.0", "2.2"},
	domain.EngineMedium: {"2.5", "3.", "4."},
	domain.EngineLarge:  {"5.", "6.", "v8", "v10", "v12", "w12"},
}

// MatchesEngineSize reports whether engine contains any token of bucket.
// Unknown buckets match nothing.
func MatchesEngineSize(engine string, bucket domain.EngineSize) bool {
	tokens, ok := engineTokens[bucket]
	if !ok {
		return false
	}
	lower := strings.ToLower(engine)
	for _, token := range tokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}
