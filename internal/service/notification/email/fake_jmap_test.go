package email

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/tidwall/gjson"
)

// fakeJMAP 테스트용 JMAP 서버입니다. 세션 문서와 네 가지 메서드 호출에 응답합니다.
type fakeJMAP struct {
	server *httptest.Server

	sessionStatus int

	// failMethod 지정된 메서드 호출에 failStatus로 응답합니다.
	failMethod string
	failStatus int

	// omitCreated 지정된 메서드 응답에서 created를 생략합니다.
	omitCreated string

	noDrafts   bool
	identities []map[string]string

	mu          sync.Mutex
	methods     []string
	using       map[string][]string
	authHeaders []string
	draft       gjson.Result
	submission  gjson.Result
}

func newFakeJMAP(t *testing.T) *fakeJMAP {
	t.Helper()

	f := &fakeJMAP{
		identities: []map[string]string{
			{"id": "ident-1", "email": "me@fastmail.com"},
			{"id": "ident-2", "email": "alias@fastmail.com"},
		},
		using: make(map[string][]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/jmap/session", f.handleSession)
	mux.HandleFunc("/jmap/api/", f.handleAPI)

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeJMAP) sessionURL() string {
	return f.server.URL + "/jmap/session"
}

func (f *fakeJMAP) recordAuth(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authHeaders = append(f.authHeaders, r.Header.Get("Authorization"))
}

func (f *fakeJMAP) handleSession(w http.ResponseWriter, r *http.Request) {
	f.recordAuth(r)

	if f.sessionStatus != 0 {
		w.WriteHeader(f.sessionStatus)
		return
	}

	writeJSON(w, map[string]any{
		"primaryAccounts": map[string]string{
			capabilityMail:       "acc-1",
			capabilitySubmission: "acc-1",
		},
		"apiUrl": f.server.URL + "/jmap/api/",
	})
}

func (f *fakeJMAP) handleAPI(w http.ResponseWriter, r *http.Request) {
	f.recordAuth(r)

	body, _ := io.ReadAll(r.Body)
	req := gjson.ParseBytes(body)
	method := req.Get("methodCalls.0.0").String()
	callID := req.Get("methodCalls.0.2").String()
	args := req.Get("methodCalls.0.1")

	f.mu.Lock()
	f.methods = append(f.methods, method)
	var using []string
	for _, u := range req.Get("using").Array() {
		using = append(using, u.String())
	}
	f.using[method] = using
	f.mu.Unlock()

	if method == f.failMethod {
		w.WriteHeader(f.failStatus)
		return
	}

	var result map[string]any
	switch method {
	case "Mailbox/get":
		list := []map[string]string{{"id": "mb-inbox", "name": "Inbox", "role": "inbox"}}
		if !f.noDrafts {
			list = append(list, map[string]string{"id": "mb-drafts", "name": "Drafts", "role": "drafts"})
		}
		result = map[string]any{"accountId": args.Get("accountId").String(), "list": list}

	case "Email/set":
		f.mu.Lock()
		f.draft = args.Get("create.draft")
		f.mu.Unlock()
		result = map[string]any{"accountId": "acc-1"}
		if f.omitCreated != method {
			result["created"] = map[string]any{"draft": map[string]string{"id": "email-1"}}
		}

	case "Identity/get":
		result = map[string]any{"accountId": "acc-1", "list": f.identities}

	case "EmailSubmission/set":
		f.mu.Lock()
		f.submission = args.Get("create.send")
		f.mu.Unlock()
		result = map[string]any{"accountId": "acc-1"}
		if f.omitCreated != method {
			result["created"] = map[string]any{"send": map[string]string{"id": "sub-1"}}
		}

	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]any{
		"methodResponses": []any{[]any{method, result, callID}},
		"sessionState":    "s1",
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
