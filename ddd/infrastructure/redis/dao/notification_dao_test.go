package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyLayout(t *testing.T) {
	assert.Equal(t, "user:u1:notifications:lab:t1", recordKey("u1", "lab:t1"))
	assert.Equal(t, "user:u1:notifications:index", indexKey("u1"))
}

func TestChannelLayout(t *testing.T) {
	assert.Equal(t, "notifications:lab", ServiceChannel("lab"))
	assert.Equal(t, "notifications:user:u1", UserChannel("u1"))
}
