package domain

// AlertSeverity classifica a urgência de um alerta de emergência
type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "INFO"
	AlertSeverityHigh     AlertSeverity = "HIGH"
	AlertSeverityCritical AlertSeverity = "CRITICAL"
)

// EmergencyAlert é produzido a cada execução do checker; nunca é persistido
type EmergencyAlert struct {
	Severity   AlertSeverity `json:"severity"`
	Title      string        `json:"title"`
	Message    string        `json:"message"`
	Actions    []string      `json:"actions"`
	AutoAction string        `json:"auto_action,omitempty"`
}
