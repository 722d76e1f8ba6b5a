package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"faster-web/internal/platform/config"
	"faster-web/internal/security/secret"

	"github.com/spf13/cobra"
)

const cliName = "secretctl"

type options struct {
	configPath string
	key        string
	iv         string
}

// NewRootCommand 建立 secretctl 根命令.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           cliName,
		Short:         "secretctl encrypts and decrypts request bodies with the service's 3DES settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (secret.desSecretKey / secret.desIv)")
	rootCmd.PersistentFlags().StringVar(&opts.key, "key", "", "3DES key, at least 24 bytes")
	rootCmd.PersistentFlags().StringVar(&opts.iv, "iv", "", "3DES IV, 8 bytes")

	rootCmd.AddCommand(newEncryptCommand(opts), newDecryptCommand(opts))
	return rootCmd
}

// Execute 執行命令並在失敗時結束程式.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cliName, err)
		os.Exit(1)
	}
}

// codec 旗標優先，否則讀取設定檔.
func (o *options) codec() (*secret.TripleDES, error) {
	key, iv := o.key, o.iv
	if key == "" || iv == "" {
		if o.configPath == "" {
			return nil, fmt.Errorf("either --key/--iv or --config is required")
		}
		cfg, err := config.Read(o.configPath)
		if err != nil {
			return nil, err
		}
		if key == "" {
			key = cfg.Secret.DesSecretKey
		}
		if iv == "" {
			iv = cfg.Secret.DesIv
		}
	}
	return secret.NewTripleDES(key, iv)
}

// input 取參數，沒有參數時讀取 stdin.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
