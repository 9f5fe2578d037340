package main_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frobware/depmerge"
)

func TestVersion(t *testing.T) {
	info := Version()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Revision)
	assert.NotEmpty(t, info.BuildTime)

	assert.True(t, strings.HasPrefix(info.GoVersion, "go"), "GoVersion should start with 'go', got %s", info.GoVersion)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestVersionConsistency(t *testing.T) {
	assert.Equal(t, Version(), Version(), "build information should be stable across calls")
}
