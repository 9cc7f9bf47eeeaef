package service

import (
	"bud35/internal/contract"
	"bud35/internal/utils"
	"bud35/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type ReportService struct {
	PersonRepo PersonRepository
	TargetRepo TargetRepository
}

func NewReportService(personRepo PersonRepository, targetRepo TargetRepository) *ReportService {
	return &ReportService{
		PersonRepo: personRepo,
		TargetRepo: targetRepo,
	}
}

// Summary aggregates registry and watchlist counts for the printable
// report. Read-only; nothing feeds back into the data model.
func (r *ReportService) Summary() (*contract.SummaryReport, apierror.ErrorResponse) {
	persons, err := r.PersonRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch persons for report: %v", err)
		return nil, apierror.InternalServerError
	}

	targets, err := r.TargetRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch targets for report: %v", err)
		return nil, apierror.InternalServerError
	}

	report := &contract.SummaryReport{
		TotalPersons: int64(len(persons)),
		TotalTargets: int64(len(targets)),
		ByStatus:     map[string]int64{},
		ByDanger:     map[string]int64{},
		ByPriority:   map[string]int64{},
		GeneratedAt:  utils.FormatEpoch(utils.NowUTC()),
	}

	for _, person := range persons {
		report.ByStatus[string(person.Status)]++
		if person.DangerLevel != "" {
			report.ByDanger[string(person.DangerLevel)]++
		}
		if person.Faccionado {
			report.Faccionados++
		}
	}
	for _, target := range targets {
		report.ByPriority[string(target.Priority)]++
	}
	return report, nil
}
