// internal/aiagent/agent.go
package aiagent

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Agent wraps a Generator with the analysis, negotiation and contract
// routines. Every routine has a deterministic local fallback so callers
// never see a generation error.
type Agent struct {
	generator Generator
	logger    *logrus.Logger
}

func NewAgent(generator Generator, logger *logrus.Logger) *Agent {
	return &Agent{
		generator: generator,
		logger:    logger,
	}
}

// extractJSON returns the first '{' .. last '}' span of s, mirroring the
// pattern-extraction retry used when strict parsing fails.
func extractJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
