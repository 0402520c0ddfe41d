package usecase

import (
	"fmt"
	"strings"

	"nexus-tube/domain/model"
)

type IModerationUsecase interface {
	AddReport(reportType model.ReportType, targetID, targetName, reason string) (model.Report, error)
	DismissReport(id string) error
	Reports() []model.Report
	Report(id string) (model.Report, error)
}

// AddReport appends a report filed by the active user to the moderation queue
func (s *Store) AddReport(reportType model.ReportType, targetID, targetName, reason string) (model.Report, error) {
	var created model.Report
	err := s.apply(func() ([]model.StoreEvent, error) {
		if reportType != model.ReportVideo && reportType != model.ReportUser {
			return nil, fmt.Errorf("%w: unknown report type %q", model.ErrValidation, reportType)
		}
		if targetID == "" || strings.TrimSpace(reason) == "" {
			return nil, fmt.Errorf("%w: target and reason are required", model.ErrValidation)
		}
		created = model.Report{
			ID:         s.newID("rep_"),
			Type:       reportType,
			TargetID:   targetID,
			TargetName: targetName,
			Reason:     reason,
			ReportedBy: s.active.Name,
			Timestamp:  s.timestamp(),
		}
		s.reports = append(s.reports, created)
		return []model.StoreEvent{s.event(model.EventReportAdded, created.ID, "Report submitted successfully")}, nil
	})
	return created, err
}

// DismissReport drops a report from the queue without touching its target
func (s *Store) DismissReport(id string) error {
	return s.apply(func() ([]model.StoreEvent, error) {
		for i, r := range s.reports {
			if r.ID == id {
				s.reports = append(s.reports[:i:i], s.reports[i+1:]...)
				return []model.StoreEvent{s.event(model.EventReportDismissed, id, "Report dismissed")}, nil
			}
		}
		return nil, fmt.Errorf("%w: report %s", model.ErrNotFound, id)
	})
}

// Reports returns the moderation queue, oldest first
func (s *Store) Reports() []model.Report {
	var out []model.Report
	s.read(func() { out = append([]model.Report{}, s.reports...) })
	return out
}

func (s *Store) Report(id string) (model.Report, error) {
	var (
		r  model.Report
		ok bool
	)
	s.read(func() {
		for _, it := range s.reports {
			if it.ID == id {
				r, ok = it, true
				return
			}
		}
	})
	if !ok {
		return model.Report{}, fmt.Errorf("%w: report %s", model.ErrNotFound, id)
	}
	return r, nil
}
