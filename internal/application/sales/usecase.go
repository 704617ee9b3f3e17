package sales

import (
	"time"

	"github.com/jhoicas/Negocio-api/internal/application/dto"
	"github.com/jhoicas/Negocio-api/internal/domain"
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

// ReportUseCase agregados de solo lectura sobre el libro de ventas. Nada se
// almacena de forma redundante: cada consulta recalcula desde el libro.
type ReportUseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(sales repository.SaleRepository, products repository.ProductRepository) *ReportUseCase {
	return &ReportUseCase{sales: sales, products: products}
}

// DailyReport total vendido por producto en la fecha dada.
func (uc *ReportUseCase) DailyReport(date time.Time) (map[int]int, error) {
	list, err := uc.sales.ListByDate(entity.Day(date))
	if err != nil {
		return nil, err
	}
	report := make(map[int]int, len(list))
	for _, s := range list {
		report[s.ProductID] += s.Quantity
	}
	return report, nil
}

// TotalByProduct total vendido por producto en todas las fechas. Devuelve
// además los IDs en orden de primera aparición en el libro, para que los
// desempates sean deterministas dado un mismo orden de inserción.
func (uc *ReportUseCase) TotalByProduct() (map[int]int, []int, error) {
	list, err := uc.sales.List()
	if err != nil {
		return nil, nil, err
	}
	totals := make(map[int]int, len(list))
	var order []int
	for _, s := range list {
		if _, seen := totals[s.ProductID]; !seen {
			order = append(order, s.ProductID)
		}
		totals[s.ProductID] += s.Quantity
	}
	return totals, order, nil
}

// MostDemanded producto con el mayor total vendido; en empate gana el primero
// que aparece en el libro. Devuelve ErrNoSales cuando el libro está vacío.
func (uc *ReportUseCase) MostDemanded() (*dto.MostDemandedResponse, error) {
	totals, order, err := uc.TotalByProduct()
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return nil, domain.ErrNoSales
	}
	topID := order[0]
	for _, id := range order[1:] {
		if totals[id] > totals[topID] {
			topID = id
		}
	}
	product, err := uc.products.GetByID(topID)
	if err != nil {
		return nil, err
	}
	name := ""
	if product != nil {
		name = product.Name
	}
	return &dto.MostDemandedResponse{ProductName: name, TotalQty: totals[topID]}, nil
}
