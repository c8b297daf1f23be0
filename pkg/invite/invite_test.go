package invite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	code := GenerateCode("team-secret")
	assert.NotEmpty(t, code, "Encoded code should not be empty")
}

func TestDecodeRoundTrip(t *testing.T) {
	code := GenerateCode("team-secret")

	secret, uniqueID, err := Decode(code)

	assert.Nil(t, err, "Should not have an error during decoding")
	assert.Equal(t, "team-secret", secret)
	assert.NotEmpty(t, uniqueID)
}

func TestDecode_ErrorHandling(t *testing.T) {
	_, _, err := Decode("this is not a base64 string")
	assert.NotNil(t, err, "Expected an error for incorrect base64 string")
}
