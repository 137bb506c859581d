package mapping

import (
	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/models"
)

// ToModelTask converts a domain Task to a model Task
func ToModelTask(d domain.Task) models.Task {
	return models.Task{
		TaskID:      d.TaskID,
		Title:       d.Title,
		Kind:        string(d.Kind),
		TaskDate:    domain.DateOf(d.Date),
		TaskTime:    d.Time,
		Client:      d.Client,
		Location:    d.Location,
		Description: d.Description,
		Completed:   d.Completed,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTask converts a model Task to a domain Task
func ToDomainTask(m models.Task) domain.Task {
	return domain.Task{
		TaskID:      m.TaskID,
		Title:       m.Title,
		Kind:        domain.TaskKind(m.Kind),
		Date:        domain.DateOf(m.TaskDate),
		Time:        m.TaskTime,
		Client:      m.Client,
		Location:    m.Location,
		Description: m.Description,
		Completed:   m.Completed,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTaskSlice converts a slice of model tasks to domain tasks
func ToDomainTaskSlice(ms []models.Task) []domain.Task {
	ds := make([]domain.Task, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTask(m)
	}
	return ds
}
