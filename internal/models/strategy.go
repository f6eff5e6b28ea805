package models

import (
	"fmt"
	"strings"
)

// Strategy selects how percentiles are resolved for a whole run.
type Strategy string

const (
	StrategyExact  Strategy = "exact"
	StrategyDigest Strategy = "digest"
)

// SketchKind selects the digest backend used by StrategyDigest.
type SketchKind string

const (
	SketchTDigest  SketchKind = "tdigest"
	SketchDDSketch SketchKind = "ddsketch"
	SketchHDR      SketchKind = "hdr"
)

func NewStrategyFromString(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyExact:
		return StrategyExact, nil
	case StrategyDigest:
		return StrategyDigest, nil
	default:
		return "", fmt.Errorf("invalid strategy: %q", s)
	}
}

func NewSketchKindFromString(s string) (SketchKind, error) {
	switch SketchKind(strings.ToLower(strings.TrimSpace(s))) {
	case SketchTDigest:
		return SketchTDigest, nil
	case SketchDDSketch:
		return SketchDDSketch, nil
	case SketchHDR:
		return SketchHDR, nil
	default:
		return "", fmt.Errorf("invalid sketch kind: %q", s)
	}
}
