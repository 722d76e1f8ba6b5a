package secret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey      = "0123456789abcdefghijklmn"
	testOtherKey = "nmlkjihgfedcba9876543210"
	testIV       = "12345678"
)

// 向量由 openssl enc -des-ede3-cbc 產生
func TestTripleDES_KnownVectors(t *testing.T) {
	codec, err := NewTripleDES(testKey, testIV)
	require.NoError(t, err)

	testCases := []struct {
		name       string
		plaintext  string
		ciphertext string
	}{
		{"Single block", `{"a":1}`, "WauSTYXc5Q8="},
		{"Unicode", `{"name":"张三","age":18}`, "tQhdXBfCvnNp+OM+rHQIrgP2rNgMaEDY7H1REGuRrq8="},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ciphertext, codec.Encrypt(tc.plaintext))

			plain, err := codec.Decrypt(tc.ciphertext)
			require.NoError(t, err)
			assert.Equal(t, tc.plaintext, plain)
		})
	}
}

func TestTripleDES_RoundTrip(t *testing.T) {
	codec, err := NewTripleDES(testKey, testIV)
	require.NoError(t, err)

	for _, plaintext := range []string{
		"",
		"x",
		"12345678",
		"Line 1\nLine 2\tTab",
		strings.Repeat("This is a long message. ", 100),
		"你好世界！🔐",
	} {
		encrypted := codec.Encrypt(plaintext)
		decrypted, err := codec.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestTripleDES_KeyLongerThan24BytesUsesPrefix(t *testing.T) {
	long, err := NewTripleDES(testKey+"ignored-tail", testIV)
	require.NoError(t, err)

	assert.Equal(t, "WauSTYXc5Q8=", long.Encrypt(`{"a":1}`))
}

func TestTripleDES_InvalidKeyMaterial(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		iv   string
	}{
		{"Empty key", "", testIV},
		{"Short key", "k", testIV},
		{"Short IV", testKey, "i"},
		{"Long IV", testKey, "123456789"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTripleDES(tc.key, tc.iv)
			assert.ErrorIs(t, err, ErrInvalidKeySize)
		})
	}
}

func TestTripleDES_DecryptFailures(t *testing.T) {
	codec, err := NewTripleDES(testKey, testIV)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		input string
	}{
		{"Not base64", "not base64 !!"},
		{"Truncated base64", "WauSTYXc5Q"},
		{"Not block aligned", "AAAA"},
		{"Wrong key", "FH50+6m2+3w="},
		{"Plain JSON", `{"a":1}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := codec.Decrypt(tc.input)
				assert.ErrorIs(t, err, ErrDecryptFailed)
			})
		})
	}
}

func TestTripleDES_DecryptTrimsWhitespace(t *testing.T) {
	codec, err := NewTripleDES(testKey, testIV)
	require.NoError(t, err)

	plain, err := codec.Decrypt("WauSTYXc5Q8=\n")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, plain)
}

func TestPKCS5Unpad(t *testing.T) {
	_, err := pkcs5Unpad([]byte{1, 2, 3, 4, 5, 6, 7, 0}, 8)
	assert.Error(t, err)

	_, err = pkcs5Unpad([]byte{1, 2, 3, 4, 5, 6, 2, 3}, 8)
	assert.Error(t, err)

	out, err := pkcs5Unpad([]byte{'a', 'b', 6, 6, 6, 6, 6, 6}, 8)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), out)
}
