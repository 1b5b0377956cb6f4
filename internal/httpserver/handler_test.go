package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liorae/liora/internal/chat"
	"github.com/liorae/liora/internal/config"
	"github.com/liorae/liora/internal/contact"
	"github.com/liorae/liora/internal/httpserver"
	"github.com/liorae/liora/internal/mail"
	"github.com/liorae/liora/internal/session"
	"github.com/liorae/liora/internal/site"
)

const wantOffline = "Got it. I don’t have my full AI brain connected yet. " +
	"Share your main channel (IG/TikTok/LinkedIn), audience, and desired outcome, " +
	"and I’ll sketch a quick plan."

type stubCompleter struct {
	text string
	err  error
}

func (s *stubCompleter) Complete(_ context.Context, _ *chat.CompletionRequest) (string, error) {
	return s.text, s.err
}

type fakeSender struct {
	sent []*mail.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg *mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func testConfig(apiKey string, debug bool) *config.Config {
	return &config.Config{
		Chat: chat.Config{
			APIKey:      apiKey,
			Model:       "gpt-4o-mini",
			Temperature: 0.7,
			MaxTokens:   600,
		},
		Email: mail.Config{
			From:             "Lioraè Co. <no-reply@liorae.co>",
			ContactRecipient: "hello@liorae.co",
		},
		Debug: debug,
	}
}

// newTestHandler wires a handler the way the DI container does, with a
// controllable completion build func and a capturing mail sender.
func newTestHandler(t *testing.T, cfg *config.Config, build chat.BuildFunc) (*httpserver.Handler, *fakeSender) {
	t.Helper()

	sender := &fakeSender{}
	contactSvc, err := contact.NewService(sender, cfg.Email)
	require.NoError(t, err)

	pages, err := site.NewRenderer()
	require.NoError(t, err)

	clients := chat.NewClientCache(cfg.Chat, build)
	replies := chat.NewReplyService(clients, cfg.Chat, cfg.Debug)

	return httpserver.NewHandler(cfg, replies, clients, contactSvc, session.NewMemoryStore(), pages), sender
}

func countingBuild(completer chat.Completer, buildErr error) (chat.BuildFunc, *atomic.Int32) {
	var calls atomic.Int32
	return func(_ chat.Config, _ string) (chat.Completer, error) {
		calls.Add(1)
		return completer, buildErr
	}, &calls
}

func decodeReply(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Reply
}

func TestHandleChat_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t, testConfig("", false), nil)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid JSON\n", rec.Body.String())
}

func TestHandleChat_TrailingDataRejected(t *testing.T) {
	build, calls := countingBuild(&stubCompleter{text: "hi"}, nil)
	h, _ := newTestHandler(t, testConfig("sk-test-1234567890", false), build)

	bodies := []string{
		`{"message":"hi"} trailing`,
		`{"message":"hi"}{"message":"again"}`,
	}
	for _, body := range bodies {
		req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.HandleChat(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		require.Equal(t, "Invalid JSON\n", rec.Body.String(), "body %q", body)
	}
	require.Equal(t, int32(0), calls.Load())

	// Trailing whitespace is not trailing data.
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":""}`+"\n"))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleChatSend_TrailingDataRejected(t *testing.T) {
	h, _ := newTestHandler(t, testConfig("", false), nil)

	req := httptest.NewRequest(http.MethodPost, "/chat/send", strings.NewReader(`{"message":"hi"} extra`))
	rec := httptest.NewRecorder()
	h.HandleChatSend(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid JSON\n", rec.Body.String())
}

func TestHandleChat_EmptyMessageNudges(t *testing.T) {
	t.Setenv(chat.EnvKeyName, "sk-test-1234567890")
	build, calls := countingBuild(&stubCompleter{text: "hi"}, nil)
	h, _ := newTestHandler(t, testConfig("", false), build)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"   "}`))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "What’s on your mind?", decodeReply(t, rec))
	// Blank input must not touch the client cache.
	require.Equal(t, int32(0), calls.Load())
}

func TestHandleChat_Success(t *testing.T) {
	build, calls := countingBuild(&stubCompleter{text: "  Here is the plan.  "}, nil)
	h, _ := newTestHandler(t, testConfig("sk-test-1234567890", false), build)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"Help with IG"}`))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Here is the plan.", decodeReply(t, rec))
	require.Equal(t, int32(1), calls.Load())
}

func TestHandleChat_OfflineFallback(t *testing.T) {
	t.Setenv(chat.EnvKeyName, "")
	build, calls := countingBuild(&stubCompleter{text: "hi"}, nil)
	h, _ := newTestHandler(t, testConfig("", false), build)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hello"}`))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, wantOffline, decodeReply(t, rec))
	require.Equal(t, int32(0), calls.Load())
}

func TestHandleChatSend_ForwardsEmptyMessage(t *testing.T) {
	t.Setenv(chat.EnvKeyName, "")
	h, _ := newTestHandler(t, testConfig("", false), nil)

	req := httptest.NewRequest(http.MethodPost, "/chat/send", strings.NewReader(`{"message":""}`))
	rec := httptest.NewRecorder()
	h.HandleChatSend(rec, req)

	// The legacy endpoint has no blank-input short circuit, so an empty
	// message still reaches the reply service and gets the offline line.
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, wantOffline, decodeReply(t, rec))
}

func TestHandleChatStart_IssuesCookieAndStableID(t *testing.T) {
	h, _ := newTestHandler(t, testConfig("", false), nil)

	first := httptest.NewRecorder()
	h.HandleChatStart(first, httptest.NewRequest(http.MethodPost, "/chat/start", nil))

	require.Equal(t, http.StatusOK, first.Code)
	cookies := first.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "liora_sid", cookies[0].Name)
	require.NotEmpty(t, cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)

	var firstBody map[string]string
	require.NoError(t, json.NewDecoder(first.Body).Decode(&firstBody))
	require.NotEmpty(t, firstBody["conversation_id"])

	// Returning with the cookie keeps the conversation and sets nothing new.
	again := httptest.NewRequest(http.MethodPost, "/chat/start", nil)
	again.AddCookie(cookies[0])
	second := httptest.NewRecorder()
	h.HandleChatStart(second, again)

	require.Empty(t, second.Result().Cookies())
	var secondBody map[string]string
	require.NoError(t, json.NewDecoder(second.Body).Decode(&secondBody))
	require.Equal(t, firstBody["conversation_id"], secondBody["conversation_id"])
}

func TestHandleChatHealth_ReportsWithoutLeakingKey(t *testing.T) {
	t.Setenv(chat.EnvKeyName, "")
	const rawKey = "sk-test-1234567890"
	build, _ := countingBuild(&stubCompleter{text: "hi"}, nil)
	h, _ := newTestHandler(t, testConfig(rawKey, true), build)

	rec := httptest.NewRecorder()
	h.HandleChatHealth(rec, httptest.NewRequest(http.MethodGet, "/chat/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var report map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	require.Equal(t, true, report["sdk_installed"])
	require.Equal(t, true, report["has_key_in_settings"])
	require.Equal(t, false, report["has_key_in_env"])
	require.Equal(t, "sk-t…7890", report["key_seen"])
	require.Equal(t, true, report["client_initialized"])
	require.Equal(t, true, report["debug"])
	require.NotContains(t, rec.Body.String(), rawKey)
}

func TestHandleChatHealth_NoCredential(t *testing.T) {
	t.Setenv(chat.EnvKeyName, "")
	build, calls := countingBuild(&stubCompleter{text: "hi"}, nil)
	h, _ := newTestHandler(t, testConfig("", false), build)

	rec := httptest.NewRecorder()
	h.HandleChatHealth(rec, httptest.NewRequest(http.MethodGet, "/chat/health", nil))

	var report map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	require.Equal(t, false, report["has_key_in_settings"])
	require.Equal(t, "(missing)", report["key_seen"])
	require.Equal(t, false, report["client_initialized"])
	require.Equal(t, int32(0), calls.Load())
}

func TestHandleChatReset_RequiresDebug(t *testing.T) {
	h, _ := newTestHandler(t, testConfig("sk-test-1234567890", false), nil)

	rec := httptest.NewRecorder()
	h.HandleChatReset(rec, httptest.NewRequest(http.MethodPost, "/chat/reset", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleChatReset_DebugOn(t *testing.T) {
	build, calls := countingBuild(nil, errors.New("boom"))
	h, _ := newTestHandler(t, testConfig("sk-test-1234567890", true), build)

	// Poison the cache, then reset and confirm the next request rebuilds.
	chatReq := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hi"}`))
	h.HandleChat(httptest.NewRecorder(), chatReq)
	require.Equal(t, int32(1), calls.Load())

	rec := httptest.NewRecorder()
	h.HandleChatReset(rec, httptest.NewRequest(http.MethodPost, "/chat/reset", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"reset":true}`, rec.Body.String())

	chatReq = httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"hi"}`))
	h.HandleChat(httptest.NewRecorder(), chatReq)
	require.Equal(t, int32(2), calls.Load())
}

func TestHandleHealth(t *testing.T) {
	h, _ := newTestHandler(t, testConfig("", false), nil)

	rec := httptest.NewRecorder()
	h.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestHandleHome(t *testing.T) {
	h, _ := newTestHandler(t, testConfig("", false), nil)

	rec := httptest.NewRecorder()
	h.HandleHome(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), "IGNITE")
}

func TestHandleContent(t *testing.T) {
	h, _ := newTestHandler(t, testConfig("", false), nil)

	rec := httptest.NewRecorder()
	h.HandleContent(rec, httptest.NewRequest(http.MethodGet, "/api/content", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload site.PageData
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	require.Len(t, payload.Tiers, 5)
	require.Equal(t, "liorae", payload.IGHandle)
}
