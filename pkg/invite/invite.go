package invite

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samborkent/uuidv7"
)

// GenerateCode builds an assistant invite code carrying the team secret and a
// one-off id, base64 encoded so it survives mail clients and URL paths.
func GenerateCode(secret string) string {
	uniqueID := uuidv7.New()

	code := fmt.Sprintf("%s|%s", secret, uniqueID.String())

	return base64.URLEncoding.EncodeToString([]byte(code))
}

func Decode(code string) (secret, uniqueID string, err error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(code)
	if err != nil {
		return "", "", err
	}
	res := strings.Split(string(decodedBytes), "|")
	if len(res) != 2 {
		return "", "", fmt.Errorf("not correct format")
	}
	return res[0], res[1], nil
}
