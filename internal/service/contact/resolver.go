package contact

import (
	"github.com/darkkaiser/notify-relay/internal/config"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
)

// ResolvedSet 해석된 연락처 주소 집합입니다. 삽입 순서를 유지하며 중복 주소는 포함하지 않습니다.
type ResolvedSet struct {
	Email []string `json:"email"`

	// SMS 확장 지점으로만 존재하며 현재는 항상 비어 있습니다.
	SMS []string `json:"sms"`
}

// Empty 해석된 주소가 하나도 없는지 반환합니다.
func (s ResolvedSet) Empty() bool {
	return len(s.Email) == 0 && len(s.SMS) == 0
}

func (s *ResolvedSet) addEmail(address string) bool {
	if !deliverable(address) {
		return false
	}
	for _, existing := range s.Email {
		if existing == address {
			return false
		}
	}
	s.Email = append(s.Email, address)
	return true
}

// Resolve 라벨 목록을 디렉토리 기준으로 해석합니다.
//
// 그룹 라벨은 멤버 라벨로 한 단계만 확장되며, 멤버가 다시 그룹이더라도 더 이상 확장하지 않습니다.
// 찾을 수 없는 라벨은 에러 없이 무시되고 unknown으로 반환됩니다.
func (d *Directory) Resolve(labels []string) (set ResolvedSet, unknown []string) {
	set = ResolvedSet{Email: []string{}, SMS: []string{}}

	for _, label := range labels {
		if members, ok := d.Members(label); ok {
			for _, member := range members {
				if address, ok := d.Lookup(member); ok {
					set.addEmail(address)
				}
			}
			continue
		}

		address, ok := d.Lookup(label)
		if !ok {
			if _, known := d.Email[label]; !known {
				unknown = append(unknown, label)
			}
			continue
		}
		set.addEmail(address)
	}

	return set, unknown
}

// Resolver 요청마다 설정으로부터 디렉토리를 구성하여 라벨을 해석합니다.
type Resolver struct {
	cfg    *config.AppConfig
	logger applog.FieldLogger
}

// NewResolver 새로운 Resolver를 생성합니다.
func NewResolver(cfg *config.AppConfig, logger applog.FieldLogger) *Resolver {
	if cfg == nil {
		panic("contact: AppConfig는 필수입니다")
	}
	return &Resolver{cfg: cfg, logger: logger}
}

// Resolve 라벨 목록을 연락처 주소 집합으로 해석합니다.
func (r *Resolver) Resolve(labels []string) ResolvedSet {
	dir := BuildDirectory(r.cfg, r.logger)
	set, unknown := dir.Resolve(labels)

	if len(unknown) > 0 {
		applog.Component(r.logger, component).WithFields(applog.Fields{
			"source": dir.Source,
			"labels": unknown,
		}).Debug("디렉토리에 존재하지 않는 수신자 라벨을 무시합니다")
	}

	return set
}

// Directory 현재 설정으로 구성되는 디렉토리를 반환합니다.
func (r *Resolver) Directory() *Directory {
	return BuildDirectory(r.cfg, r.logger)
}
