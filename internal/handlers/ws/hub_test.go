package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/ports"
	"github.com/simplyinvite/showcase-backend/internal/handlers/middleware"
)

type silentLogger struct{}

func (silentLogger) Info(string, ...any)        {}
func (silentLogger) Error(string, ...any)       {}
func (silentLogger) Debug(string, ...any)       {}
func (silentLogger) Warn(string, ...any)        {}
func (l silentLogger) With(...any) ports.Logger { return l }

// setupHubServer sobe um servidor com o hub atrás de um middleware que
// injeta o usuário no contexto, como o middleware de autenticação faria.
func setupHubServer(t *testing.T, userID string) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(silentLogger{})
	router := gin.New()
	router.GET("/ws", func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.CurrentUserContextKey, &entities.User{ID: userID, Role: entities.RoleTalent})
		}
		hub.Handle(c)
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	t.Cleanup(hub.Close)
	return hub, srv
}

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("falha ao conectar no websocket: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// waitForClients espera o hub registrar (ou remover) conexões do usuário.
func waitForClients(t *testing.T, hub *Hub, userID string, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		hub.mu.RLock()
		got := len(hub.clients[userID])
		hub.mu.RUnlock()
		if got == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("esperava %d conexões para %s, timeout", want, userID)
}

func TestHub_Notify(t *testing.T) {
	t.Run("entrega notificação ao usuário conectado", func(t *testing.T) {
		hub, srv := setupHubServer(t, "talent-1")
		conn := dialHub(t, srv)
		waitForClients(t, hub, "talent-1", 1)

		hub.Notify("talent-1", ports.Notification{
			Type:    "invitation.received",
			Payload: map[string]string{"invitationId": "inv-1"},
		})

		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var got ports.Notification
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("falha ao ler notificação: %v", err)
		}
		if got.Type != "invitation.received" {
			t.Errorf("esperava tipo invitation.received, obteve %s", got.Type)
		}
		payload, ok := got.Payload.(map[string]any)
		if !ok {
			t.Fatalf("payload com tipo inesperado: %T", got.Payload)
		}
		if payload["invitationId"] != "inv-1" {
			t.Errorf("esperava invitationId inv-1, obteve %v", payload["invitationId"])
		}
	})

	t.Run("usuário sem conexão não recebe nada", func(t *testing.T) {
		hub, _ := setupHubServer(t, "talent-1")

		// Não deve bloquear nem entrar em pânico
		hub.Notify("fantasma", ports.Notification{Type: "invitation.received"})
	})

	t.Run("escritas concorrentes na mesma conexão chegam íntegras", func(t *testing.T) {
		hub, srv := setupHubServer(t, "talent-1")
		conn := dialHub(t, srv)
		waitForClients(t, hub, "talent-1", 1)

		const total = 50
		var wg sync.WaitGroup
		for i := 0; i < total; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				hub.Notify("talent-1", ports.Notification{Type: "invitation.received"})
			}()
		}
		wg.Wait()

		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		for i := 0; i < total; i++ {
			var got ports.Notification
			if err := conn.ReadJSON(&got); err != nil {
				t.Fatalf("falha ao ler notificação %d: %v", i, err)
			}
			if got.Type != "invitation.received" {
				t.Errorf("notificação %d com tipo inesperado: %s", i, got.Type)
			}
		}
	})

	t.Run("conexão fechada pelo cliente é removida", func(t *testing.T) {
		hub, srv := setupHubServer(t, "talent-1")
		conn := dialHub(t, srv)
		waitForClients(t, hub, "talent-1", 1)

		_ = conn.Close()
		waitForClients(t, hub, "talent-1", 0)

		// Entrega após a desconexão continua best-effort
		hub.Notify("talent-1", ports.Notification{Type: "invitation.received"})
	})

	t.Run("notificação só chega ao destinatário", func(t *testing.T) {
		hub, srv := setupHubServer(t, "talent-1")
		conn := dialHub(t, srv)
		waitForClients(t, hub, "talent-1", 1)

		hub.Notify("outro-usuario", ports.Notification{Type: "invitation.received"})

		_ = conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
		var got ports.Notification
		if err := conn.ReadJSON(&got); err == nil {
			t.Errorf("não esperava notificação, obteve %+v", got)
		}
	})
}

func TestHub_Handle(t *testing.T) {
	t.Run("sem usuário autenticado é 401", func(t *testing.T) {
		_, srv := setupHubServer(t, "")

		resp, err := http.Get(srv.URL + "/ws")
		if err != nil {
			t.Fatalf("falha na requisição: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("esperava 401, obteve %d", resp.StatusCode)
		}
	})

	t.Run("duas conexões do mesmo usuário recebem a notificação", func(t *testing.T) {
		hub, srv := setupHubServer(t, "talent-1")
		first := dialHub(t, srv)
		second := dialHub(t, srv)
		waitForClients(t, hub, "talent-1", 2)

		hub.Notify("talent-1", ports.Notification{Type: "invitation.answered"})

		for _, conn := range []*websocket.Conn{first, second} {
			_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
			var got ports.Notification
			if err := conn.ReadJSON(&got); err != nil {
				t.Fatalf("falha ao ler notificação: %v", err)
			}
			if got.Type != "invitation.answered" {
				t.Errorf("esperava tipo invitation.answered, obteve %s", got.Type)
			}
		}
	})
}
