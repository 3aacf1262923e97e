package contact

import (
	"testing"

	"github.com/darkkaiser/notify-relay/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(contacts config.ContactsConfig, fastmailUsername string) *config.AppConfig {
	cfg := config.Default()
	cfg.Contacts = contacts
	cfg.Email.Fastmail.Username = fastmailUsername
	return &cfg
}

const directoryJSON = `{
	"email": {
		"personal": {"address": "me@fastmail.com", "name": "Personal"},
		"work":     {"address": "me@work.io", "name": "Work"},
		"urgent":   {"address": "pager@work.io", "name": "Urgent"},
		"stub":     {"address": "someone@example.com", "name": "Stub"}
	},
	"groups": {
		"all":       ["personal", "work"],
		"important": ["work", "urgent"],
		"family":    ["personal"],
		"nested":    ["all", "urgent"]
	}
}`

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	envConfig := newConfig(config.ContactsConfig{
		Personal: "me@fastmail.com",
		Work:     "me@work.io",
		Urgent:   "pager@work.io",
	}, "")
	jsonConfig := newConfig(config.ContactsConfig{ConfigJSON: directoryJSON}, "")

	tests := []struct {
		name     string
		labels   []string
		expected []string
	}{
		{"직접 라벨", []string{"work"}, []string{"me@work.io"}},
		{"그룹은 멤버의 합집합", []string{"all"}, []string{"me@fastmail.com", "me@work.io"}},
		{"그룹 간 중복 제거", []string{"all", "important"}, []string{"me@fastmail.com", "me@work.io", "pager@work.io"}},
		{"직접 라벨과 그룹 중복", []string{"work", "all"}, []string{"me@work.io", "me@fastmail.com"}},
		{"알 수 없는 라벨은 무시", []string{"nobody", "urgent"}, []string{"pager@work.io"}},
		{"빈 목록", []string{}, []string{}},
	}

	for _, source := range []struct {
		name string
		cfg  *config.AppConfig
	}{{"env", envConfig}, {"json", jsonConfig}} {
		for _, tt := range tests {
			t.Run(source.name+"/"+tt.name, func(t *testing.T) {
				logger, _ := test.NewNullLogger()

				set := NewResolver(source.cfg, logger).Resolve(tt.labels)

				assert.Equal(t, tt.expected, set.Email)
				assert.Empty(t, set.SMS)
				assert.NotNil(t, set.SMS)
			})
		}
	}
}

func TestResolver_PlaceholderDomainExcluded(t *testing.T) {
	t.Parallel()

	logger, _ := test.NewNullLogger()

	t.Run("JSON 디렉토리", func(t *testing.T) {
		cfg := newConfig(config.ContactsConfig{ConfigJSON: directoryJSON}, "")

		set := NewResolver(cfg, logger).Resolve([]string{"stub", "personal"})
		assert.Equal(t, []string{"me@fastmail.com"}, set.Email)
	})

	t.Run("개별 설정", func(t *testing.T) {
		cfg := newConfig(config.ContactsConfig{
			Personal: "me@fastmail.com",
			Work:     "work@example.com",
			Urgent:   "urgent@sub.example.com",
		}, "")

		set := NewResolver(cfg, logger).Resolve([]string{"important", "all"})
		assert.Equal(t, []string{"me@fastmail.com"}, set.Email)
	})
}

func TestResolver_GroupsExpandOneLevel(t *testing.T) {
	t.Parallel()

	logger, _ := test.NewNullLogger()
	cfg := newConfig(config.ContactsConfig{ConfigJSON: directoryJSON}, "")

	// "nested"의 멤버 "all"은 그룹이지만 연락처 라벨로만 조회되므로 결과에 포함되지 않는다.
	set := NewResolver(cfg, logger).Resolve([]string{"nested"})
	assert.Equal(t, []string{"pager@work.io"}, set.Email)
}

func TestResolver_UnknownLabelsAreLogged(t *testing.T) {
	t.Parallel()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	cfg := newConfig(config.ContactsConfig{Personal: "me@fastmail.com"}, "")

	set := NewResolver(cfg, logger).Resolve([]string{"ghost", "personal", "work"})

	assert.Equal(t, []string{"me@fastmail.com"}, set.Email)

	var found bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "디렉토리에 존재하지 않는 수신자 라벨을 무시합니다" {
			found = true
			assert.Equal(t, []string{"ghost"}, entry.Data["labels"], "설정만 비어 있는 내장 라벨은 unknown이 아니다")
		}
	}
	assert.True(t, found)
}

func TestBuildDirectory(t *testing.T) {
	t.Parallel()

	t.Run("personal은 FASTMAIL_USERNAME으로 대체된다", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		dir := BuildDirectory(newConfig(config.ContactsConfig{}, "account@fastmail.com"), logger)

		assert.Equal(t, SourceEnv, dir.Source)
		address, ok := dir.Lookup(LabelPersonal)
		require.True(t, ok)
		assert.Equal(t, "account@fastmail.com", address)
	})

	t.Run("CONTACT_PERSONAL이 우선한다", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		dir := BuildDirectory(newConfig(config.ContactsConfig{Personal: "me@fastmail.com"}, "account@fastmail.com"), logger)

		address, _ := dir.Lookup(LabelPersonal)
		assert.Equal(t, "me@fastmail.com", address)
	})

	t.Run("내장 그룹", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		dir := BuildDirectory(newConfig(config.ContactsConfig{}, ""), logger)

		assert.Equal(t, []string{"personal", "work"}, dir.Groups["all"])
		assert.Equal(t, []string{"work", "urgent"}, dir.Groups["important"])
		assert.Equal(t, []string{"personal"}, dir.Groups["family"])
	})

	t.Run("잘못된 JSON은 경고 후 개별 설정으로 대체", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		cfg := newConfig(config.ContactsConfig{ConfigJSON: `{"email": `, Work: "me@work.io"}, "")

		dir := BuildDirectory(cfg, logger)

		assert.Equal(t, SourceEnv, dir.Source)
		address, ok := dir.Lookup(LabelWork)
		require.True(t, ok)
		assert.Equal(t, "me@work.io", address)

		require.NotNil(t, hook.LastEntry())
		var warned bool
		for _, entry := range hook.AllEntries() {
			if entry.Level == logrus.WarnLevel {
				warned = true
				assert.Equal(t, "contact.directory", entry.Data["component"])
			}
		}
		assert.True(t, warned)
	})

	t.Run("JSON 디렉토리는 개별 설정을 무시한다", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		cfg := newConfig(config.ContactsConfig{ConfigJSON: `{"email": {"work": {"address": "json@work.io"}}}`, Personal: "me@fastmail.com"}, "")

		dir := BuildDirectory(cfg, logger)

		assert.Equal(t, SourceJSON, dir.Source)
		_, ok := dir.Lookup(LabelPersonal)
		assert.False(t, ok)
		address, _ := dir.Lookup(LabelWork)
		assert.Equal(t, "json@work.io", address)
	})
}

func TestBuildDirectory_MalformedEntries(t *testing.T) {
	t.Parallel()

	t.Run("잘못된 그룹 멤버가 있어도 JSON 디렉토리를 유지한다", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		cfg := newConfig(config.ContactsConfig{
			ConfigJSON: `{"email":{"personal":{"address":"me@fastmail.com"}},"groups":{"all":["personal",7]}}`,
			Work:       "env-work@corp.io",
		}, "")

		dir := BuildDirectory(cfg, logger)

		assert.Equal(t, SourceJSON, dir.Source)
		assert.Equal(t, []string{"personal"}, dir.Groups["all"])
		_, ok := dir.Lookup(LabelWork)
		assert.False(t, ok)

		set := NewResolver(cfg, logger).Resolve([]string{"all", "work"})
		assert.Equal(t, []string{"me@fastmail.com"}, set.Email)

		var warned bool
		for _, entry := range hook.AllEntries() {
			if entry.Level == logrus.WarnLevel && entry.Data["group"] == "all" {
				warned = true
			}
		}
		assert.True(t, warned)
	})

	t.Run("객체가 아닌 연락처 항목은 건너뛴다", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		cfg := newConfig(config.ContactsConfig{
			ConfigJSON: `{"email":{"personal":"me@x","work":{"address":"json@work.io"},"urgent":{"address":7}},"groups":{"all":"personal"}}`,
			Personal:   "env-me@corp.io",
		}, "")

		dir := BuildDirectory(cfg, logger)

		assert.Equal(t, SourceJSON, dir.Source)
		_, ok := dir.Lookup(LabelPersonal)
		assert.False(t, ok)
		_, ok = dir.Lookup(LabelUrgent)
		assert.False(t, ok)
		address, ok := dir.Lookup(LabelWork)
		require.True(t, ok)
		assert.Equal(t, "json@work.io", address)
		_, ok = dir.Members("all")
		assert.False(t, ok)
	})
}

// JSON 디렉토리와 동일한 내용을 개별 설정으로 구성하면 같은 결과를 내야 한다.
func TestDirectory_JSONAndEnvEquivalence(t *testing.T) {
	t.Parallel()

	logger, _ := test.NewNullLogger()

	jsonCfg := newConfig(config.ContactsConfig{ConfigJSON: `{
		"email": {
			"personal": {"address": "me@fastmail.com", "name": "Personal"},
			"work":     {"address": "me@work.io", "name": "Work"},
			"urgent":   {"address": "pager@work.io", "name": "Urgent"}
		},
		"groups": {"all": ["personal", "work"], "important": ["work", "urgent"], "family": ["personal"]}
	}`}, "")
	envCfg := newConfig(config.ContactsConfig{Personal: "me@fastmail.com", Work: "me@work.io", Urgent: "pager@work.io"}, "")

	for _, labels := range [][]string{{"personal"}, {"all"}, {"important", "family"}, {"urgent", "all", "ghost"}} {
		fromJSON := NewResolver(jsonCfg, logger).Resolve(labels)
		fromEnv := NewResolver(envCfg, logger).Resolve(labels)

		assert.Equal(t, fromEnv, fromJSON, "labels=%v", labels)
	}
}
