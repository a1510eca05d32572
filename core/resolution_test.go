package core

import "testing"

func TestResolutionContext_LookupPrecedence(t *testing.T) {
	rc := &ResolutionContext{
		UploadedFiles: []UploadedFile{
			{Locator: "s3://bucket/a.png", Payload: "from-upload"},
			{Locator: "s3://bucket/b.png"},
		},
		Cache: map[string]string{
			"s3://bucket/a.png": "from-cache",
			"s3://bucket/b.png": "cache-b",
		},
	}

	if got, ok := rc.Lookup("s3://bucket/a.png"); !ok || got != "from-upload" {
		t.Fatalf("uploaded-file list must win over the cache, got %q ok=%v", got, ok)
	}

	// An uploaded record without a payload does not shadow a cache hit.
	if got, ok := rc.Lookup("s3://bucket/b.png"); !ok || got != "cache-b" {
		t.Fatalf("expected cache fallback, got %q ok=%v", got, ok)
	}

	if _, ok := rc.Lookup("s3://bucket/missing.png"); ok {
		t.Fatal("unknown locator must miss")
	}
}

func TestResolutionContext_NilIsAlwaysMiss(t *testing.T) {
	var rc *ResolutionContext
	if _, ok := rc.Lookup("anything"); ok {
		t.Fatal("nil context must behave as an always-miss lookup")
	}
}

func TestResolutionContext_EmptyCacheValueIsMiss(t *testing.T) {
	rc := &ResolutionContext{Cache: map[string]string{"loc": ""}}
	if _, ok := rc.Lookup("loc"); ok {
		t.Fatal("empty cached payload must not resolve")
	}
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
