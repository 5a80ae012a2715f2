package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack(t *testing.T) {
	stack := string(Stack(1))
	assert.Contains(t, stack, "utils.TestStack")
	assert.Contains(t, stack, "stack_test.go")
}
