package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
	"github.com/jhoicas/erp-inventory/internal/domain"
	"github.com/jhoicas/erp-inventory/internal/domain/entity"
	"github.com/jhoicas/erp-inventory/internal/domain/repository"
)

// AccessService administra la matriz rol x módulo de cada empresa y es el
// único punto de la aplicación que decide si un rol puede usar un módulo.
type AccessService struct {
	companyRepo repository.CompanyRepository
}

// NewAccessService construye el servicio de accesos.
func NewAccessService(companyRepo repository.CompanyRepository) *AccessService {
	return &AccessService{companyRepo: companyRepo}
}

// HasModuleAccess informa si el rol tiene el módulo habilitado en la empresa.
// Devuelve false (sin error) si el rol no está configurado. Devuelve error
// solo ante fallos de infraestructura.
func (s *AccessService) HasModuleAccess(ctx context.Context, companyID, roleName, module string) (bool, error) {
	if companyID == "" || roleName == "" || module == "" {
		return false, fmt.Errorf("access: companyID, roleName y module son obligatorios")
	}
	access, err := s.companyRepo.GetRoleAccess(companyID, roleName)
	if err != nil {
		return false, err
	}
	return access.HasModule(module), nil
}

// List devuelve la matriz completa de accesos de la empresa.
func (s *AccessService) List(companyID string) ([]dto.RoleAccessResponse, error) {
	list, err := s.companyRepo.ListRoleAccess(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleAccessResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toRoleAccessResponse(a))
	}
	return out, nil
}

// ToggleModule alterna un módulo para un rol; crea la fila si el rol aún no
// tiene configuración.
func (s *AccessService) ToggleModule(companyID string, in dto.ToggleModuleRequest) (*dto.RoleAccessResponse, error) {
	if in.RoleName == "" || !validModule(in.Module) {
		return nil, domain.ErrInvalidInput
	}
	access, err := s.companyRepo.GetRoleAccess(companyID, in.RoleName)
	if err != nil {
		return nil, err
	}
	if access == nil {
		access = newRoleAccess(companyID, in.RoleName)
	}
	access.Modules[in.Module] = !access.Modules[in.Module]
	access.UpdatedAt = time.Now()
	if err := s.companyRepo.UpsertRoleAccess(access); err != nil {
		return nil, err
	}
	resp := toRoleAccessResponse(access)
	return &resp, nil
}

// ToggleVisibility oculta o muestra un rol sin borrar su configuración.
func (s *AccessService) ToggleVisibility(companyID string, in dto.ToggleVisibilityRequest) (*dto.RoleAccessResponse, error) {
	if in.RoleName == "" {
		return nil, domain.ErrInvalidInput
	}
	access, err := s.companyRepo.GetRoleAccess(companyID, in.RoleName)
	if err != nil {
		return nil, err
	}
	if access == nil {
		return nil, domain.ErrNotFound
	}
	access.Visible = !access.Visible
	access.UpdatedAt = time.Now()
	if err := s.companyRepo.UpsertRoleAccess(access); err != nil {
		return nil, err
	}
	resp := toRoleAccessResponse(access)
	return &resp, nil
}

func newRoleAccess(companyID, roleName string) *entity.RoleAccess {
	now := time.Now()
	modules := make(map[string]bool, len(entity.Modules))
	for _, m := range entity.Modules {
		modules[m] = false
	}
	return &entity.RoleAccess{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		RoleName:  roleName,
		Modules:   modules,
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func validModule(module string) bool {
	for _, m := range entity.Modules {
		if m == module {
			return true
		}
	}
	return false
}

func toRoleAccessResponse(a *entity.RoleAccess) dto.RoleAccessResponse {
	modules := make(map[string]bool, len(a.Modules))
	for k, v := range a.Modules {
		modules[k] = v
	}
	return dto.RoleAccessResponse{
		RoleName:  a.RoleName,
		Modules:   modules,
		Visible:   a.Visible,
		UpdatedAt: a.UpdatedAt,
	}
}
