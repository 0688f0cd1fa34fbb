package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolNames(t *testing.T) {
	seen := map[string]bool{}
	for i, name := range symbolNames {
		assert.NotEmpty(t, name, "symbol %d", i)
		assert.False(t, seen[name], name)
		seen[name] = true
	}
	assert.Equal(t, "ioctl", symbolNames[symIoctl])
}

func TestUnknownSymbolIsNotResolved(t *testing.T) {
	assert.False(t, NewResolver().Resolved("definitelyNotAnEntryPoint"))
}
