package module

import (
	"context"

	"healthdash/internal/services/checkin/domain"
	csvc "healthdash/internal/services/checkin/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptCheckInPort struct{ svc csvc.Service }

// Submit stores a check-in for userID
func (a adaptCheckInPort) Submit(ctx context.Context, userID string, sub domain.Submission) (domain.Result, error) {
	return a.svc.Submit(ctx, userID, sub)
}

var _ domain.ServicePort = adaptCheckInPort{}
