package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "Version 1.0a1", String())

	gitCommit, gitBranch = "abcdef", "master"
	defer func() { gitCommit, gitBranch = "", "" }()
	assert.Equal(t, "Version 1.0a1 abcdef-master", String())
}
