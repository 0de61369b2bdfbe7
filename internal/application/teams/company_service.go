package teams

import (
	"context"

	appshared "github.com/rescue-ops/backend/internal/application/shared"
	"github.com/rescue-ops/backend/internal/domain/shared"
	"github.com/rescue-ops/backend/internal/domain/teams"
	"go.uber.org/zap"
)

// CompanyService handles company operations
type CompanyService struct {
	companyRepo teams.CompanyRepository
	refs        appshared.References
	logger      *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(
	companyRepo teams.CompanyRepository,
	validator appshared.ReferenceValidator,
	observer appshared.RejectionObserver,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		refs:        appshared.NewReferences(validator, observer, "company"),
		logger:      logger,
	}
}

// Create creates a new company
func (s *CompanyService) Create(ctx context.Context, input CreateCompanyInput) (*CompanyDTO, error) {
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}

	company := teams.NewCompany(input.Name, input.TaxID, input.Email, input.Phone, input.AddressID)
	company.PhotoID = input.PhotoID
	if err := s.refs.Check(ctx, company.References()); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, appshared.StoreError(s.logger, "create company", err)
	}

	s.logger.Info("Company created", zap.Int64("company_id", company.ID), zap.String("tax_id", company.TaxID))
	dto := ToCompanyDTO(company)
	return &dto, nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(ctx context.Context, id int64) (*CompanyDTO, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load company", err)
	}
	dto := ToCompanyDTO(company)
	return &dto, nil
}

// List retrieves a page of companies
func (s *CompanyService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[CompanyDTO], error) {
	list, err := s.companyRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "list companies", err)
	}
	total, err := s.companyRepo.Count(ctx, filter)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "count companies", err)
	}

	items := make([]CompanyDTO, len(list))
	for i := range list {
		items[i] = ToCompanyDTO(&list[i])
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// Update merges the supplied fields into the company
func (s *CompanyService) Update(ctx context.Context, id int64, input UpdateCompanyInput) (*CompanyDTO, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, appshared.StoreError(s.logger, "load company", err)
	}
	if err := appshared.ValidateInput(input); err != nil {
		return nil, err
	}
	if err := s.refs.CheckSupplied(ctx, input.references()); err != nil {
		return nil, err
	}

	appshared.MergeString(&company.Name, input.Name)
	appshared.MergeString(&company.TaxID, input.TaxID)
	appshared.MergeString(&company.Email, input.Email)
	appshared.MergeString(&company.Phone, input.Phone)
	appshared.MergeID(&company.AddressID, input.AddressID)
	appshared.MergeOptionalID(&company.PhotoID, input.PhotoID)
	company.Normalize()
	company.Touch()

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, appshared.StoreError(s.logger, "update company", err)
	}
	dto := ToCompanyDTO(company)
	return &dto, nil
}

// Delete deletes a company. It fails while teams reference it.
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	if _, err := s.companyRepo.FindByID(ctx, id); err != nil {
		return appshared.StoreError(s.logger, "load company", err)
	}
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		return appshared.DeleteError(s.logger, "company", id, err)
	}
	s.logger.Info("Company deleted", zap.Int64("company_id", id))
	return nil
}
