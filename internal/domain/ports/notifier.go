package ports

// Notification é um evento enviado a um usuário conectado
type Notification struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Notifier entrega notificações em tempo real (best-effort).
// Usuário desconectado simplesmente não recebe nada.
type Notifier interface {
	Notify(userID string, n Notification)
}
