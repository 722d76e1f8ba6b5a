package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestEncryptDecryptWithFlags(t *testing.T) {
	flags := []string{"--key", "0123456789abcdefghijklmn", "--iv", "12345678"}

	out, err := run(t, "", append([]string{"encrypt"}, append(flags, `{"a":1}`)...)...)
	require.NoError(t, err)
	assert.Equal(t, "WauSTYXc5Q8=", out)

	out, err = run(t, "", append([]string{"decrypt"}, append(flags, "WauSTYXc5Q8=")...)...)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
}

func TestEncryptFromStdin(t *testing.T) {
	out, err := run(t, "{\"a\":1}\n", "encrypt", "--key", "0123456789abcdefghijklmn", "--iv", "12345678")
	require.NoError(t, err)
	assert.Equal(t, "WauSTYXc5Q8=", out)
}

func TestDecryptWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  name: faster-web
  version: 1.0.0
server:
  port: "8080"
  timeout: 30
secret:
  enabled: true
  desSecretKey: "0123456789abcdefghijklmn"
  desIv: "12345678"
`), 0o600))

	out, err := run(t, "", "decrypt", "--config", path, "WauSTYXc5Q8=")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
}

func TestDecryptWrongKey(t *testing.T) {
	_, err := run(t, "", "decrypt", "--key", "nmlkjihgfedcba9876543210", "--iv", "12345678", "WauSTYXc5Q8=")
	assert.Error(t, err)
}

func TestMissingKeyMaterial(t *testing.T) {
	_, err := run(t, "", "encrypt", "x")
	assert.Error(t, err)
}
