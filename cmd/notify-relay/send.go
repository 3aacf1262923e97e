package main

import (
	"encoding/json"
	"errors"
	"fmt"

	apperrors "github.com/darkkaiser/notify-relay/internal/pkg/errors"
	"github.com/spf13/cobra"
)

type sendOptions struct {
	root *rootOptions

	subject    string
	message    string
	recipients []string
}

func newSendCmd(root *rootOptions) *cobra.Command {
	opts := &sendOptions{root: root}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "HTTP 서버 없이 알림을 한 번 발송하고 결과를 JSON으로 출력합니다",
		Example: `  notify-relay send --subject "배포 완료" --message "v1.2.0 배포가 완료되었습니다"
  notify-relay send -s "장애" -m "DB 응답 없음" --to important --to personal`,
		Args: cobra.NoArgs,
		RunE: opts.run,
	}

	cmd.Flags().StringVarP(&opts.subject, "subject", "s", "", "제목 (최대 200자)")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "본문 (최대 10,000자)")
	cmd.Flags().StringArrayVarP(&opts.recipients, "to", "t", nil, "수신자 라벨 (반복 지정 가능, 생략 시 personal)")

	return cmd
}

// run 요청 본문을 HTTP 경로와 동일하게 구성하여 검증과 발송을 수행합니다.
// 검증 실패 또는 일부라도 발송에 실패하면 에러를 반환하여 종료 코드 1로 끝납니다.
func (o *sendOptions) run(cmd *cobra.Command, _ []string) error {
	appConfig, err := loadConfig(cmd, o.root, nil)
	if err != nil {
		return fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	payload := map[string]any{
		"subject": o.subject,
		"message": o.message,
	}
	if cmd.Flags().Changed("to") {
		payload["recipients"] = o.recipients
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	result, err := newComponents(appConfig, nil).notifier.Handle(cmd.Context(), body)
	if err != nil {
		return fmt.Errorf("요청 검증 실패: %s", apperrors.MessageOf(err))
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}

	if !result.Success {
		return errors.New(result.Message)
	}

	return nil
}
