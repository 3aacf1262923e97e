package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/notify-relay/internal/config"
	"github.com/darkkaiser/notify-relay/internal/pkg/version"
	"github.com/darkkaiser/notify-relay/internal/service/api"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/spf13/cobra"
)

const banner = `
             _   _  __                     _
 _ __   ___ | |_(_)/ _|_   _      _ __ ___| | __ _ _   _
| '_ \ / _ \| __| | |_| | | |____| '__/ _ \ |/ _' | | | |
| | | | (_) | |_| |  _| |_| |____| | |  __/ | (_| | |_| |
|_| |_|\___/ \__|_|_|  \__, |    |_|  \___|_|\__,_|\__, |
                       |___/                       |___/ %s
--------------------------------------------------------------------------------
`

type serveOptions struct {
	root *rootOptions
	port int
}

func (o *serveOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.port, "port", "p", config.DefaultListenPort, "HTTP 서버 포트 (PORT 환경 변수보다 우선)")
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{root: root}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "HTTP 서버를 실행합니다 (SIGINT/SIGTERM 수신 시 종료)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}
	opts.bindFlags(cmd)

	return cmd
}

func (o *serveOptions) run(cmd *cobra.Command) error {
	overrides := map[string]any{}
	if cmd.Flags().Changed("port") {
		overrides["server.listen_port"] = o.port
	}

	appConfig, err := loadConfig(cmd, o.root, overrides)
	if err != nil {
		return fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		return fmt.Errorf("로그 시스템 초기화 실패: %w", err)
	}
	defer appLogCloser.Close()

	fmt.Fprintf(cmd.OutOrStdout(), banner, version.Version())

	applog.WithComponentAndFields("main", applog.Fields{
		"version": version.Get().String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serve(ctx, appConfig)
}

// serve API 서비스를 시작하고 ctx가 취소될 때까지 대기한 뒤 종료를 기다립니다.
func serve(ctx context.Context, appConfig *config.AppConfig) error {
	c := newComponents(appConfig, nil)
	apiService := api.NewService(appConfig, c.notifier, c.dispatcher, c.resolver)

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	serviceStopWG.Add(1)
	if err := apiService.Start(serviceStopCtx, serviceStopWG); err != nil {
		cancel()
		serviceStopWG.Wait()
		return fmt.Errorf("서비스 초기화 실패: %w", err)
	}

	applog.WithComponentAndFields("main", applog.Fields{
		"port":          appConfig.Server.ListenPort,
		"email_backend": c.dispatcher.BackendName(),
	}).Info("서버 가동 완료")

	<-serviceStopCtx.Done()

	applog.WithComponent("main").Info("Shutdown signal received")
	serviceStopWG.Wait()

	return nil
}
