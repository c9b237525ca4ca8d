package onomatopoeia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest(t *testing.T) {
	a := Digest([]byte(`{"ドン": []}`))
	b := Digest([]byte(`{"ドン": []}`))
	c := Digest([]byte(`{"バン": []}`))

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	// blake3 of the empty input.
	assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", Digest(nil))
}
