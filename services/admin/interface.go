package admin

import (
	"context"
	"errors"
	"fmt"

	"classalloc/models"
	"classalloc/services/booking"
	"classalloc/utils"

	"go.uber.org/zap"
)

var ErrInvalidTemplate = errors.New("invalid template")

// TemplateStore persists recurring booking templates.
type TemplateStore interface {
	Create(ctx context.Context, tpl models.Template) (*models.Template, error)
	ListActive(ctx context.Context) ([]models.Template, error)
}

// AuditReader lists audit records. Records are never updated.
type AuditReader interface {
	List(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error)
}

type AdminService interface {
	ListTemplates(ctx context.Context) ([]models.Template, error)
	CreateTemplate(ctx context.Context, admin models.Actor, tpl models.Template) (*models.Template, error)
	ListAudits(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Templates TemplateStore
	Audits    AuditReader
	Logger    *zap.Logger
}

func (s *DefaultAdminService) ListTemplates(ctx context.Context) ([]models.Template, error) {
	tpls, err := s.Templates.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	if tpls == nil {
		tpls = []models.Template{}
	}
	return tpls, nil
}

func (s *DefaultAdminService) CreateTemplate(ctx context.Context, admin models.Actor, tpl models.Template) (*models.Template, error) {
	if errs := utils.ValidateStruct(tpl); errs != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, utils.FormatValidationErrors(errs))
	}
	if !tpl.Department.Valid() {
		return nil, fmt.Errorf("%w: unknown department %q", ErrInvalidTemplate, tpl.Department)
	}
	if err := booking.ValidateRange(tpl.StartTime, tpl.EndTime); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}

	tpl.CreatedBy = admin.ID
	created, err := s.Templates.Create(ctx, tpl)
	if err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Info("Template created", zap.String("template", created.ID), zap.String("admin", admin.ID))
	}
	return created, nil
}

// ListAudits returns audit records newest first. Limit defaults to 100.
func (s *DefaultAdminService) ListAudits(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error) {
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 100
	}
	recs, err := s.Audits.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	if recs == nil {
		recs = []models.AuditRecord{}
	}
	return recs, nil
}
