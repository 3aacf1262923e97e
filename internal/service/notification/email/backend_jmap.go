package email

import (
	"context"
	"net/http"
	"strings"

	"github.com/darkkaiser/notify-relay/internal/config"
	"github.com/darkkaiser/notify-relay/internal/pkg/fetcher"
	applog "github.com/darkkaiser/notify-relay/pkg/log"
	"github.com/darkkaiser/notify-relay/pkg/strutil"
	"github.com/tidwall/gjson"
)

// JMAP capability URN
const (
	capabilityCore       = "urn:ietf:params:jmap:core"
	capabilityMail       = "urn:ietf:params:jmap:mail"
	capabilitySubmission = "urn:ietf:params:jmap:submission"
)

// 에러 메시지에 사용하는 단계 이름
const (
	stepSession  = "session"
	stepMailbox  = "mailbox"
	stepCreate   = "create"
	stepIdentity = "identity"
	stepSend     = "send"
)

// maxLoggedResponse 비정상 응답을 로그에 남길 때의 최대 길이
const maxLoggedResponse = 500

type jmapRequest struct {
	Using       []string         `json:"using"`
	MethodCalls []jmapInvocation `json:"methodCalls"`
}

// jmapInvocation [메서드 이름, 인자, 호출 ID] 형태의 메서드 호출입니다.
type jmapInvocation [3]any

type jmapSession struct {
	accountID string
	apiURL    string
}

// jmapBackend Fastmail JMAP API를 사용합니다.
//
// 세션 조회 → 임시 보관함 조회 → 초안 생성 → 발신 ID 조회 → 제출의 다섯 단계를 순서대로 수행합니다.
type jmapBackend struct {
	cfg     *config.FastmailConfig
	fetcher fetcher.Fetcher
	logger  applog.FieldLogger
}

func newJMAPBackend(cfg *config.AppConfig, f fetcher.Fetcher, logger applog.FieldLogger) *jmapBackend {
	return &jmapBackend{
		cfg:     &cfg.Email.Fastmail,
		fetcher: f,
		logger:  logger,
	}
}

func (b *jmapBackend) Name() string { return BackendJMAP }

func (b *jmapBackend) Usable() bool { return b.cfg.Configured() }

func (b *jmapBackend) Send(ctx context.Context, msg *Message) (*Result, error) {
	session, err := b.session(ctx)
	if err != nil {
		return nil, err
	}

	draftsID, err := b.findDraftsMailbox(ctx, session)
	if err != nil {
		return nil, err
	}

	emailID, err := b.createDraft(ctx, session, draftsID, msg)
	if err != nil {
		return nil, err
	}

	identityID, err := b.findIdentity(ctx, session, msg.From)
	if err != nil {
		return nil, err
	}

	submissionID, err := b.submit(ctx, session, emailID, identityID)
	if err != nil {
		return nil, err
	}

	return &Result{
		Success:      true,
		MessageID:    emailID,
		SubmissionID: submissionID,
	}, nil
}

func (b *jmapBackend) session(ctx context.Context) (*jmapSession, error) {
	req, err := newAuthorizedRequest(ctx, http.MethodGet, b.cfg.SessionURL, b.cfg.APIToken, nil)
	if err != nil {
		return nil, err
	}

	data, err := fetcher.DoRead(b.fetcher, req)
	if err != nil {
		return nil, newRequestError(err, jmapStepPrefix(stepSession))
	}

	doc := gjson.ParseBytes(data)
	session := &jmapSession{
		accountID: doc.Get("primaryAccounts." + gjson.Escape(capabilityMail)).String(),
		apiURL:    doc.Get("apiUrl").String(),
	}
	if session.accountID == "" || session.apiURL == "" {
		return nil, newDispatchError("Fastmail session error: missing mail account or apiUrl")
	}

	return session, nil
}

func (b *jmapBackend) findDraftsMailbox(ctx context.Context, session *jmapSession) (string, error) {
	resp, err := b.call(ctx, session, stepMailbox, jmapRequest{
		Using: []string{capabilityCore, capabilityMail},
		MethodCalls: []jmapInvocation{{
			"Mailbox/get",
			map[string]any{
				"accountId":  session.accountID,
				"properties": []string{"id", "name", "role"},
			},
			"mb1",
		}},
	})
	if err != nil {
		return "", err
	}

	id := resp.Get(`methodResponses.0.1.list.#(role=="drafts").id`).String()
	if id == "" {
		return "", newDispatchError("Drafts mailbox not found")
	}
	return id, nil
}

func (b *jmapBackend) createDraft(ctx context.Context, session *jmapSession, draftsID string, msg *Message) (string, error) {
	resp, err := b.call(ctx, session, stepCreate, jmapRequest{
		Using: []string{capabilityCore, capabilityMail, capabilitySubmission},
		MethodCalls: []jmapInvocation{{
			"Email/set",
			map[string]any{
				"accountId": session.accountID,
				"create": map[string]any{
					"draft": map[string]any{
						"mailboxIds": map[string]bool{draftsID: true},
						"from":       []map[string]string{{"email": msg.From}},
						"to":         []map[string]string{{"email": msg.To}},
						"subject":    msg.Subject,
						"textBody":   []map[string]string{{"partId": "text", "type": "text/plain"}},
						"bodyValues": map[string]any{
							"text": map[string]string{"value": msg.Text},
						},
					},
				},
			},
			"c1",
		}},
	})
	if err != nil {
		return "", err
	}

	id := resp.Get("methodResponses.0.1.created.draft.id").String()
	if id == "" {
		b.logUnexpected(stepCreate, resp)
		return "", newDispatchError("Failed to create draft email")
	}
	return id, nil
}

func (b *jmapBackend) findIdentity(ctx context.Context, session *jmapSession, from string) (string, error) {
	resp, err := b.call(ctx, session, stepIdentity, jmapRequest{
		Using: []string{capabilityCore, capabilitySubmission},
		MethodCalls: []jmapInvocation{{
			"Identity/get",
			map[string]any{"accountId": session.accountID},
			"id1",
		}},
	})
	if err != nil {
		return "", err
	}

	var available []string
	for _, identity := range resp.Get("methodResponses.0.1.list").Array() {
		email := identity.Get("email").String()
		if email == from {
			return identity.Get("id").String(), nil
		}
		available = append(available, email)
	}

	return "", newDispatchErrorf("No sending identity found for %s. Available identities: %s", from, strings.Join(available, ", "))
}

func (b *jmapBackend) submit(ctx context.Context, session *jmapSession, emailID, identityID string) (string, error) {
	resp, err := b.call(ctx, session, stepSend, jmapRequest{
		Using: []string{capabilityCore, capabilityMail, capabilitySubmission},
		MethodCalls: []jmapInvocation{{
			"EmailSubmission/set",
			map[string]any{
				"accountId": session.accountID,
				"create": map[string]any{
					"send": map[string]string{
						"emailId":    emailID,
						"identityId": identityID,
					},
				},
			},
			"c2",
		}},
	})
	if err != nil {
		return "", err
	}

	id := resp.Get("methodResponses.0.1.created.send.id").String()
	if id == "" {
		b.logUnexpected(stepSend, resp)
		return "", newDispatchError("Failed to send email via JMAP")
	}
	return id, nil
}

// call JMAP API 엔드포인트로 메서드 호출을 전송하고 응답 문서를 반환합니다.
func (b *jmapBackend) call(ctx context.Context, session *jmapSession, step string, payload jmapRequest) (gjson.Result, error) {
	req, err := newAuthorizedRequest(ctx, http.MethodPost, session.apiURL, b.cfg.APIToken, payload)
	if err != nil {
		return gjson.Result{}, err
	}

	data, err := fetcher.DoRead(b.fetcher, req)
	if err != nil {
		return gjson.Result{}, newRequestError(err, jmapStepPrefix(step))
	}

	return gjson.ParseBytes(data), nil
}

func (b *jmapBackend) logUnexpected(step string, resp gjson.Result) {
	b.logger.WithFields(applog.Fields{
		"backend":  BackendJMAP,
		"step":     step,
		"response": strutil.Truncate(resp.Raw, maxLoggedResponse),
	}).Error("JMAP 응답에서 생성된 객체를 찾을 수 없습니다")
}
