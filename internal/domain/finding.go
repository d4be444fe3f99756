package domain

// FindingSeverity ordena as severidades usadas no cálculo do health score
type FindingSeverity string

const (
	FindingPass     FindingSeverity = "PASS"
	FindingInfo     FindingSeverity = "INFO"
	FindingWarning  FindingSeverity = "WARNING"
	FindingCritical FindingSeverity = "CRITICAL"
)

// Finding é o resultado de um check individual de auditoria.
// Efêmero: calculado a cada execução, nunca persistido individualmente.
type Finding struct {
	Check    string          `json:"check"`
	Category string          `json:"category"`
	Severity FindingSeverity `json:"severity"`
	Message  string          `json:"message"`
	Value    any             `json:"value,omitempty"`
	Expected any             `json:"expected,omitempty"`
}

// CampaignAudit agrega os findings de uma campanha com score e nota
type CampaignAudit struct {
	CampaignName string    `json:"campaign_name"`
	HealthScore  int       `json:"health_score"`
	Grade        string    `json:"grade"`
	Findings     []Finding `json:"findings"`
}

// AuditReport é o resultado consolidado de uma auditoria de todas as campanhas
type AuditReport struct {
	Campaigns       map[string]*CampaignAudit `json:"campaigns"`
	Summary         string                    `json:"summary"`
	Recommendations []string                  `json:"recommendations"`
	Season          string                    `json:"season"`
	Month           int                       `json:"month"`
}
