package main

import (
	"encoding/json"
	"fmt"

	"github.com/darkkaiser/notify-relay/internal/service/contact"
	"github.com/spf13/cobra"
)

// contactsReport contacts 명령의 출력 형식입니다.
type contactsReport struct {
	Source   contact.Source             `json:"source"`
	Contacts map[string]contact.Contact `json:"contacts"`
	Groups   map[string][]string        `json:"groups"`
	Labels   []string                   `json:"labels,omitempty"`
	Resolved *contact.ResolvedSet       `json:"resolved,omitempty"`
}

func newContactsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "contacts [label...]",
		Short: "현재 설정으로 구성되는 연락처 디렉토리와 라벨 해석 결과를 출력합니다",
		RunE: func(cmd *cobra.Command, labels []string) error {
			appConfig, err := loadConfig(cmd, root, nil)
			if err != nil {
				return fmt.Errorf("환경설정 로드 실패: %w", err)
			}

			resolver := contact.NewResolver(appConfig, nil)
			dir := resolver.Directory()

			report := contactsReport{
				Source:   dir.Source,
				Contacts: dir.Email,
				Groups:   dir.Groups,
			}
			if len(labels) > 0 {
				resolved := resolver.Resolve(labels)
				report.Labels = labels
				report.Resolved = &resolved
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}
