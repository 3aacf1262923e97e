package main

import (
	"fmt"
	"os"

	"github.com/darkkaiser/notify-relay/internal/config"
	"github.com/spf13/cobra"
)

// @title notify-relay API
// @version 1.0.0
// @description 알림 요청을 받아 수신자 라벨을 연락처로 해석하고, 설정된 메일 백엔드로 발송하는 릴레이 서버의 REST API입니다.
// @description
// @description ## 인증 방법
// @description AUTH_ENABLED=true로 설정하면 Authorization 헤더에 AUTH_TOKEN 값을 전달해야 합니다.
// @description "Bearer " 접두사는 생략할 수 있습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// rootOptions 모든 하위 명령이 공유하는 플래그입니다.
type rootOptions struct {
	configFile string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	serve := &serveOptions{root: opts}

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "알림 요청을 메일로 중계하는 HTTP 릴레이 서버",
		Long: `notify-relay는 HTTP로 받은 알림 요청의 수신자 라벨(personal, work, important 등)을
연락처 주소로 해석하고, 설정된 메일 백엔드(Fastmail JMAP, 범용 HTTP API, Gmail)로 발송합니다.

하위 명령 없이 실행하면 serve와 동일하게 동작합니다.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve.run(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "설정 파일 경로 (기본값: 현재 디렉토리의 "+config.DefaultFilename+", 없으면 건너뜀)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "디버그 모드 (개발용 로그 설정)")
	serve.bindFlags(rootCmd)

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newSendCmd(opts))
	rootCmd.AddCommand(newContactsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig 설정을 로드합니다. 명령행에서 명시적으로 지정한 플래그만 최우선 값으로 덮어씁니다.
func loadConfig(cmd *cobra.Command, opts *rootOptions, overrides map[string]any) (*config.AppConfig, error) {
	if overrides == nil {
		overrides = map[string]any{}
	}
	if cmd.Flags().Changed("debug") {
		overrides["debug"] = opts.debug
	}

	return config.LoadWithOptions(config.LoadOptions{
		Filename:  opts.configFile,
		Overrides: overrides,
	})
}
