package core

// UploadedFile records one previously uploaded file: its locator plus an
// optional cached base64 payload. Cached payloads may carry a data-URL
// prefix.
type UploadedFile struct {
	Locator string `json:"locator"`
	Payload string `json:"payload,omitempty"`
}

// ResolutionContext carries the two independent caching layers a caller may
// populate to resolve remote-reference attachments: an ordered uploaded-file
// list and a locator-keyed payload cache. Both are optional; a nil context
// behaves as an always-miss lookup. The core never mutates it.
type ResolutionContext struct {
	UploadedFiles []UploadedFile    `json:"uploadedFiles,omitempty"`
	Cache         map[string]string `json:"cache,omitempty"`
}

// Lookup resolves a locator to a cached base64 payload. The uploaded-file
// list takes precedence over the cache mapping; an uploaded record without a
// payload does not shadow a cache hit. Safe to call on a nil receiver.
func (rc *ResolutionContext) Lookup(locator string) (string, bool) {
	if rc == nil {
		return "", false
	}
	for _, f := range rc.UploadedFiles {
		if f.Locator == locator && f.Payload != "" {
			return f.Payload, true
		}
	}
	if payload, ok := rc.Cache[locator]; ok && payload != "" {
		return payload, true
	}
	return "", false
}
