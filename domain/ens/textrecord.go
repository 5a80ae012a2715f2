package ens

// textRecordKeys maps short aliases to ENSIP-5 text record keys
var textRecordKeys = map[string]string{
	"x":        "com.twitter",
	"twitter":  "com.twitter",
	"github":   "com.github",
	"discord":  "com.discord",
	"telegram": "org.telegram",
	"reddit":   "com.reddit",
	"linkedin": "com.linkedin",
}

// global keys, looked up verbatim
var textRecordPassthrough = map[string]struct{}{
	"avatar":      {},
	"url":         {},
	"email":       {},
	"description": {},
	"notice":      {},
	"keywords":    {},
	"location":    {},
	"header":      {},
}

// IsTextRecordAlias reports whether alias names a text record.
func IsTextRecordAlias(alias string) bool {
	if _, ok := textRecordKeys[alias]; ok {
		return true
	}
	_, ok := textRecordPassthrough[alias]
	return ok
}

// TextRecordKey maps alias to its text record key. Aliases without a mapping are returned unchanged.
func TextRecordKey(alias string) string {
	if key, ok := textRecordKeys[alias]; ok {
		return key
	}
	return alias
}
