package domain

// SessionID identifies one client conversation, carried in the session cookie.
type SessionID string

// Role tags who produced a turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// SystemPrompt seeds every new conversation history.
const SystemPrompt = "Eres un asistente útil y claro. Responde en español con precisión y brevedad."
