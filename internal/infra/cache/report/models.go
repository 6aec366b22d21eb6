package report

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// Entry запись кеша: отчёт и политика, по которой он посчитан
type Entry struct {
	Policy domain.CapacityPolicy      `json:"policy"`
	Report *domain.AvailabilityReport `json:"report"`
}
