// internal/lang/lang_test.go
package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	assert.Equal(t, "English", Name("en"))
	assert.Equal(t, "Hindi (हिन्दी)", Name("hi"))
	assert.Equal(t, "xx", Name("xx"))
}

func TestSupported(t *testing.T) {
	codes := Supported()
	assert.Len(t, codes, 18)
	assert.Contains(t, codes, "en")
	assert.Contains(t, codes, "ur")
}
