package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/liorae/liora/internal/chat"
	"github.com/liorae/liora/internal/config"
	"github.com/liorae/liora/internal/contact"
	"github.com/liorae/liora/internal/observability"
	"github.com/liorae/liora/internal/session"
	"github.com/liorae/liora/internal/site"
)

const (
	// emptyNudge is the conversational reply to a blank message. Not an
	// error: the widget sends empty messages when users mash enter.
	emptyNudge = "What’s on your mind?"

	sessionCookieName = "liora_sid"
	sessionCookieAge  = 30 * 24 * time.Hour
)

// Handler handles HTTP requests.
type Handler struct {
	replies  *chat.ReplyService
	clients  *chat.ClientCache
	chatCfg  chat.Config
	debug    bool
	contact  *contact.Service
	sessions session.Store
	pages    *site.Renderer
}

// NewHandler creates a new HTTP handler (DI constructor).
func NewHandler(
	cfg *config.Config,
	replies *chat.ReplyService,
	clients *chat.ClientCache,
	contactSvc *contact.Service,
	sessions session.Store,
	pages *site.Renderer,
) *Handler {
	return &Handler{
		replies:  replies,
		clients:  clients,
		chatCfg:  cfg.Chat,
		debug:    cfg.Debug,
		contact:  contactSvc,
		sessions: sessions,
		pages:    pages,
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatReply struct {
	Reply string `json:"reply"`
}

// decodeChatRequest parses the request body as exactly one JSON value.
// Trailing data after the value is malformed input.
func decodeChatRequest(r *http.Request) (chatRequest, bool) {
	var req chatRequest
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&req); err != nil || dec.More() {
		return chatRequest{}, false
	}
	return req, true
}

// HandleChat processes one chat message and always answers 200 with a
// usable reply; only a malformed body produces an error status.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeChatRequest(r)
	if !ok {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		writeJSON(w, chatReply{Reply: emptyNudge})
		return
	}

	writeJSON(w, chatReply{Reply: h.replies.Reply(r.Context(), msg)})
}

// HandleChatSend is the legacy widget endpoint. Unlike HandleChat it
// forwards even an empty message to the reply service.
func (h *Handler) HandleChatSend(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeChatRequest(r)
	if !ok {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	msg := strings.TrimSpace(req.Message)
	writeJSON(w, chatReply{Reply: h.replies.Reply(r.Context(), msg)})
}

// HandleChatStart issues or reuses the visitor session cookie and returns
// the conversation ID bound to it.
func (h *Handler) HandleChatStart(w http.ResponseWriter, r *http.Request) {
	sid := ""
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		sid = cookie.Value
	}
	if sid == "" {
		sid = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    sid,
			Path:     "/",
			MaxAge:   int(sessionCookieAge.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	ctx := observability.WithSessionID(r.Context(), sid)

	cid, err := h.sessions.ConversationID(ctx, sid)
	if err != nil {
		// The handshake still succeeds; the ID just won't survive restarts.
		observability.FromContext(ctx).Error("failed to resolve conversation id", zap.Error(err))
		cid = uuid.NewString()
	}

	writeJSON(w, map[string]string{"conversation_id": cid})
}

type healthReport struct {
	SDKInstalled      bool   `json:"sdk_installed"`
	HasKeyInSettings  bool   `json:"has_key_in_settings"`
	HasKeyInEnv       bool   `json:"has_key_in_env"`
	KeySeen           string `json:"key_seen"`
	ClientInitialized bool   `json:"client_initialized"`
	Debug             bool   `json:"debug"`
}

// HandleChatHealth reports assistant readiness without leaking the
// credential. It may trigger first-time client construction.
func (h *Handler) HandleChatHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthReport{
		SDKInstalled:      chat.SDKAvailable(),
		HasKeyInSettings:  strings.TrimSpace(h.chatCfg.APIKey) != "",
		HasKeyInEnv:       strings.TrimSpace(os.Getenv(chat.EnvKeyName)) != "",
		KeySeen:           chat.MaskKey(chat.ResolveCredential(h.chatCfg)),
		ClientInitialized: h.clients.Get(r.Context()) != nil,
		Debug:             h.debug,
	})
}

// HandleChatReset returns the client cache to its unbuilt state. Debug-only.
func (h *Handler) HandleChatReset(w http.ResponseWriter, r *http.Request) {
	if !h.debug {
		http.NotFound(w, r)
		return
	}

	h.clients.Reset()
	observability.FromContext(r.Context()).Info("completion client cache reset")
	writeJSON(w, map[string]bool{"reset": true})
}

// HandleHealth handles liveness check requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}
