package analytics

import (
	"errors"

	"github.com/jhoicas/Negocio-api/internal/application/dto"
	"github.com/jhoicas/Negocio-api/internal/application/inventory"
	"github.com/jhoicas/Negocio-api/internal/application/sales"
	"github.com/jhoicas/Negocio-api/internal/domain"
)

// DashboardUseCase arma el agregado que consume la capa de presentación:
// inventario completo, alertas de reposición, producto más demandado y
// clasificación de demanda. Lectura pura, sin mutaciones.
type DashboardUseCase struct {
	inventory  *inventory.UseCase
	reports    *sales.ReportUseCase
	classifier *ClassificationUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(inv *inventory.UseCase, reports *sales.ReportUseCase, classifier *ClassificationUseCase) *DashboardUseCase {
	return &DashboardUseCase{inventory: inv, reports: reports, classifier: classifier}
}

// Dashboard devuelve el agregado completo. Un libro de ventas vacío no es un
// error: MostDemanded queda en nil y la capa adaptadora presenta "sin datos".
func (uc *DashboardUseCase) Dashboard() (*dto.DashboardResponse, error) {
	inv, err := uc.inventory.List()
	if err != nil {
		return nil, err
	}
	alerts, err := uc.inventory.Alerts()
	if err != nil {
		return nil, err
	}
	labels, err := uc.classifier.Classify(0)
	if err != nil {
		return nil, err
	}
	most, err := uc.reports.MostDemanded()
	if err != nil {
		if !errors.Is(err, domain.ErrNoSales) {
			return nil, err
		}
		most = nil
	}
	return &dto.DashboardResponse{
		Inventory:      inv,
		Alerts:         alerts,
		Classification: labels,
		MostDemanded:   most,
	}, nil
}
