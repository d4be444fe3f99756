package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/risingfishing/pmax-optimizer-api/internal/usecases/auditing"
	"github.com/risingfishing/pmax-optimizer-api/pkg/apiErrors"
)

// AuditorFactory monta um auditor para o mês informado; month=0 usa o mês
// corrente. O auditor carrega os limiares sazonais no construtor, por isso é
// criado por requisição.
type AuditorFactory func(month int) (*auditing.Auditor, error)

// RunAudit roda a auditoria de saúde de todas as campanhas e devolve o
// relatório consolidado com score e nota por campanha
func RunAudit(newAuditor AuditorFactory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunAudit")

		month := 0
		if monthParam := r.URL.Query().Get("month"); monthParam != "" {
			parsed, err := strconv.Atoi(monthParam)
			if err != nil || parsed < 1 || parsed > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use um valor de 1 a 12", nil)
				return
			}
			month = parsed
		}

		auditor, err := newAuditor(month)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao preparar a auditoria", nil)
			return
		}

		report, err := auditor.AuditAll(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar a auditoria", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
