// Package contact 수신자 라벨을 실제 연락처 주소로 해석합니다.
package contact

import (
	"fmt"
	"strings"

	"github.com/darkkaiser/notify-relay/internal/config"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
)

const component = "contact.directory"

// PlaceholderDomain 이 문자열을 포함한 주소는 설정되지 않은 자리표시자로 간주하여 제외합니다.
const PlaceholderDomain = "example.com"

// 내장 라벨
const (
	LabelPersonal = "personal"
	LabelWork     = "work"
	LabelUrgent   = "urgent"
)

// Source 디렉토리가 어떤 원천으로부터 구성되었는지 나타냅니다.
type Source string

const (
	// SourceJSON CONTACTS_CONFIG JSON 문서
	SourceJSON Source = "json"

	// SourceEnv 개별 환경 변수 (CONTACT_PERSONAL 등)와 내장 그룹
	SourceEnv Source = "env"
)

// Contact 단일 이메일 연락처입니다.
type Contact struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// Directory 라벨별 연락처와 그룹 정의입니다. 요청마다 설정으로부터 새로 구성됩니다.
type Directory struct {
	Email  map[string]Contact  `json:"email"`
	Groups map[string][]string `json:"groups"`

	Source Source `json:"-"`
}

// BuildDirectory 설정 스냅샷으로부터 디렉토리를 구성합니다.
//
// CONTACTS_CONFIG가 있으면 이를 해석하여 사용하고, JSON 구문 자체가 잘못된 경우에만 경고를 남긴 뒤
// 개별 연락처 설정과 내장 그룹(all, important, family)으로 구성합니다.
// 형식이 맞지 않는 개별 항목은 경고와 함께 건너뛰며, 디렉토리 전체를 대체하지 않습니다.
func BuildDirectory(cfg *config.AppConfig, logger applog.FieldLogger) *Directory {
	logger = applog.Component(logger, component)

	if raw := cfg.Contacts.ConfigJSON; raw != "" {
		dir, err := parseDirectory(raw, logger)
		if err == nil {
			logger.WithFields(applog.Fields{
				"source":   SourceJSON,
				"contacts": len(dir.Email),
				"groups":   len(dir.Groups),
			}).Debug("CONTACTS_CONFIG로부터 연락처 디렉토리를 구성하였습니다")
			return dir
		}

		logger.WithFields(applog.Fields{
			"source": SourceJSON,
			"error":  err,
		}).Warn("CONTACTS_CONFIG 해석에 실패하여 개별 연락처 설정으로 대체합니다")
	}

	personal := cfg.Contacts.Personal
	if personal == "" {
		personal = cfg.Email.Fastmail.Username
	}

	logger.WithFields(applog.Fields{
		"source":   SourceEnv,
		"personal": personal != "",
		"work":     cfg.Contacts.Work != "",
		"urgent":   cfg.Contacts.Urgent != "",
	}).Debug("개별 연락처 설정으로부터 연락처 디렉토리를 구성하였습니다")

	return &Directory{
		Email: map[string]Contact{
			LabelPersonal: {Address: personal, Name: "Personal"},
			LabelWork:     {Address: cfg.Contacts.Work, Name: "Work"},
			LabelUrgent:   {Address: cfg.Contacts.Urgent, Name: "Urgent"},
		},
		Groups: map[string][]string{
			"all":       {LabelPersonal, LabelWork},
			"important": {LabelWork, LabelUrgent},
			"family":    {LabelPersonal},
		},
		Source: SourceEnv,
	}
}

// parseDirectory JSON 구문 오류만 에러로 반환합니다. 연락처와 그룹은 항목 단위로 디코딩합니다.
func parseDirectory(raw string, logger applog.FieldLogger) (*Directory, error) {
	doc, err := json.Parser().Unmarshal([]byte(raw))
	if err != nil {
		return nil, err
	}

	dir := &Directory{
		Email:  map[string]Contact{},
		Groups: map[string][]string{},
		Source: SourceJSON,
	}

	emails, _ := doc["email"].(map[string]any)
	for label, entry := range emails {
		var c Contact
		if err := decodeEntry(entry, &c); err != nil {
			logger.WithFields(applog.Fields{
				"label": label,
				"error": err,
			}).Warn("형식이 잘못된 연락처 항목을 건너뜁니다")
			continue
		}
		dir.Email[label] = c
	}

	groups, _ := doc["groups"].(map[string]any)
	for label, entry := range groups {
		items, ok := entry.([]any)
		if !ok {
			logger.WithField("group", label).Warn("배열이 아닌 그룹 정의를 건너뜁니다")
			continue
		}

		members := make([]string, 0, len(items))
		for _, item := range items {
			member, ok := item.(string)
			if !ok {
				logger.WithFields(applog.Fields{
					"group":  label,
					"member": item,
				}).Warn("문자열이 아닌 그룹 멤버를 건너뜁니다")
				continue
			}
			members = append(members, member)
		}
		dir.Groups[label] = members
	}

	return dir, nil
}

func decodeEntry(entry any, c *Contact) error {
	if _, ok := entry.(map[string]any); !ok {
		return fmt.Errorf("연락처 항목은 객체여야 합니다: %T", entry)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  c,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(entry)
}

// Lookup 라벨에 해당하는 연락처 주소를 반환합니다.
func (d *Directory) Lookup(label string) (string, bool) {
	c, ok := d.Email[label]
	if !ok || c.Address == "" {
		return "", false
	}
	return c.Address, true
}

// Deliverable 실제로 발송 가능한 주소(비어 있지 않고 자리표시자가 아닌)를 가진 연락처 수를 반환합니다.
func (d *Directory) Deliverable() int {
	n := 0
	for _, c := range d.Email {
		if deliverable(c.Address) {
			n++
		}
	}
	return n
}

func deliverable(address string) bool {
	return address != "" && !strings.Contains(address, PlaceholderDomain)
}

// Members 라벨이 그룹이면 멤버 라벨 목록을 반환합니다.
func (d *Directory) Members(label string) ([]string, bool) {
	members, ok := d.Groups[label]
	if !ok || members == nil {
		return nil, false
	}
	return members, true
}
