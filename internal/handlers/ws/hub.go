package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/simplyinvite/showcase-backend/internal/domain/ports"
	"github.com/simplyinvite/showcase-backend/internal/handlers/middleware"
)

const writeTimeout = 10 * time.Second

// client é uma conexão websocket registrada. Conexões gorilla só suportam
// um escritor por vez, então cada escrita passa pelo mutex do client.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (cl *client) write(n ports.Notification) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return cl.conn.WriteJSON(n)
}

// Hub mantém as conexões websocket ativas por usuário e entrega
// notificações em tempo real. A entrega é best-effort: usuário sem
// conexão não recebe nada, conexão com erro de escrita é descartada.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]map[*client]struct{} // userID -> conexões
	upgrader websocket.Upgrader
	logger   ports.Logger
}

// NewHub cria um novo hub de notificações
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// O handshake já passou pelo middleware de autenticação
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Handle faz o upgrade da conexão e a registra para o usuário autenticado.
// Requer o middleware de autenticação na rota.
func (h *Hub) Handle(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "user_id", user.ID, "error", err)
		return
	}

	cl := &client{conn: conn}
	h.register(user.ID, cl)
	h.logger.Debug("websocket connected", "user_id", user.ID)

	// Loop de leitura só para detectar fechamento; mensagens do
	// cliente são ignoradas
	go func() {
		defer func() {
			h.unregister(user.ID, cl)
			_ = conn.Close()
			h.logger.Debug("websocket disconnected", "user_id", user.ID)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Notify envia uma notificação a todas as conexões do usuário
func (h *Hub) Notify(userID string, n ports.Notification) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients[userID]))
	for cl := range h.clients[userID] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	for _, cl := range clients {
		if err := cl.write(n); err != nil {
			h.unregister(userID, cl)
			_ = cl.conn.Close()
		}
	}
}

// Close encerra todas as conexões ativas
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, clients := range h.clients {
		for cl := range clients {
			_ = cl.conn.Close()
		}
		delete(h.clients, userID)
	}
}

func (h *Hub) register(userID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*client]struct{})
	}
	h.clients[userID][cl] = struct{}{}
}

func (h *Hub) unregister(userID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[userID]; ok {
		delete(clients, cl)
		if len(clients) == 0 {
			delete(h.clients, userID)
		}
	}
}

var _ ports.Notifier = (*Hub)(nil)
