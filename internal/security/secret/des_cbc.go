package secret

import (
	"bytes"
	"crypto/cipher"
	"crypto/des"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// 3DES 金鑰與 IV 長度.
const (
	KeySize = 24
	IVSize  = des.BlockSize
)

var (
	// ErrInvalidKeySize 金鑰或 IV 長度不符.
	ErrInvalidKeySize = errors.New("invalid 3des key size")
	// ErrDecryptFailed 密文無法解密（格式、金鑰或填充錯誤）.
	ErrDecryptFailed = errors.New("3des decrypt failed")
)

// TripleDES 3DES-CBC 加解密，密文以標準 base64 傳輸，PKCS#5 填充.
// block 可併發使用，CBC 模式每次呼叫重新建立.
type TripleDES struct {
	block cipher.Block
	iv    []byte
}

// NewTripleDES 以配置中的金鑰與 IV 建立加解密器.
// 金鑰取前 24 字節，不做任何衍生；IV 必須為 8 字節.
func NewTripleDES(key, iv string) (*TripleDES, error) {
	if len(key) < KeySize {
		return nil, fmt.Errorf("%w: key must be at least %d bytes, got %d", ErrInvalidKeySize, KeySize, len(key))
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrInvalidKeySize, IVSize, len(iv))
	}

	block, err := des.NewTripleDESCipher([]byte(key)[:KeySize])
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return &TripleDES{
		block: block,
		iv:    []byte(iv),
	}, nil
}

// Encrypt 加密明文並回傳 base64 密文.
func (t *TripleDES) Encrypt(plaintext string) string {
	data := pkcs5Pad([]byte(plaintext), t.block.BlockSize())
	out := make([]byte, len(data))
	cipher.NewCBCEncrypter(t.block, t.iv).CryptBlocks(out, data)
	return base64.StdEncoding.EncodeToString(out)
}

// Decrypt 解密 base64 密文.
// 任何解碼或填充錯誤都以 ErrDecryptFailed 回傳，不會 panic.
func (t *TripleDES) Decrypt(encrypted string) (string, error) {
	encrypted = strings.TrimSpace(encrypted)
	if encrypted == "" {
		return "", nil
	}

	data, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}

	bs := t.block.BlockSize()
	if len(data) == 0 || len(data)%bs != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of %d", ErrDecryptFailed, len(data), bs)
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(t.block, t.iv).CryptBlocks(out, data)

	plain, err := pkcs5Unpad(out, bs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	return string(plain), nil
}

func pkcs5Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs5Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("empty block")
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, errors.New("bad padding")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("bad padding")
		}
	}
	return data[:len(data)-n], nil
}
