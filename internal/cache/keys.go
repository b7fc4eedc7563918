package cache

import "time"

// AnalysisTTL bounds how long a cached pipeline result stays valid.
// Rule tables change only on deploy, so a long TTL is safe.
const AnalysisTTL = 24 * time.Hour

// AnalysisKey is the cache key for a pipeline result, keyed by the
// SHA-256 of the raw upload so identical files hit the same entry.
func AnalysisKey(contentHash string) string {
	return "analysis:" + contentHash
}

// AdvisoryKey caches the LLM advisory per document and language.
func AdvisoryKey(contentHash, language string) string {
	return "advisory:" + contentHash + ":" + language
}
