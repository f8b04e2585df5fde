package application

import (
	"context"
	"fmt"

	"github.com/bnema/mllib-cli/internal/domain"
	"github.com/bnema/mllib-cli/internal/ports"
)

type Service struct {
	catalog   ports.Catalog
	installer ports.Installer
	journal   ports.InstallJournal
	clock     ports.Clock
}

func NewService(catalog ports.Catalog, installer ports.Installer, journal ports.InstallJournal, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		catalog:   catalog,
		installer: installer,
		journal:   journal,
		clock:     clock,
	}
}

func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

func (s *Service) Libraries(ctx context.Context, category domain.Category) ([]domain.Library, error) {
	libraries, err := s.catalog.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}

	return libraries, nil
}

func (s *Service) Describe(ctx context.Context, name string) (domain.Library, error) {
	library, err := s.catalog.Describe(ctx, name)
	if err != nil {
		return domain.Library{}, fmt.Errorf("describe library: %w", err)
	}

	return library, nil
}

func (s *Service) CategoryView(ctx context.Context, category domain.Category) (CategoryView, error) {
	libraries, err := s.Libraries(ctx, category)
	if err != nil {
		return CategoryView{}, err
	}

	return CategoryView{
		Category:  category,
		Libraries: libraries,
		TotalMB:   domain.TotalSizeMB(libraries),
	}, nil
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return Overview{}, err
	}

	overview := Overview{Categories: make([]CategoryView, 0, len(categories))}
	for _, category := range categories {
		view, err := s.CategoryView(ctx, category)
		if err != nil {
			return Overview{}, err
		}
		overview.Categories = append(overview.Categories, view)
	}

	return overview, nil
}

// Install resolves a library, runs the installer, and journals the outcome.
// An install failure is carried in the report, not the error return; only an
// unknown library or a cancelled context produce an error. A journal write
// failure lands in JournalErr so the caller can still show the outcome.
func (s *Service) Install(ctx context.Context, name string) (InstallReport, error) {
	library, err := s.Describe(ctx, name)
	if err != nil {
		return InstallReport{}, err
	}

	record := domain.InstallRecord{
		Library: library.Name,
		Outcome: domain.InstallSucceeded,
	}

	if installErr := s.installer.Install(ctx, library.Name); installErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return InstallReport{}, ctxErr
		}

		record.Outcome = domain.InstallFailed
		record.Reason = installErr.Error()
	}

	record.Timestamp = s.clock.Now()

	report := InstallReport{Record: record}
	if journalErr := s.journal.Append(ctx, record); journalErr != nil {
		report.JournalErr = fmt.Errorf("journal install record: %w", journalErr)
	}

	return report, nil
}

// InstallLibraries installs a selection sequentially, one journal record per
// library. A failed install does not stop the remaining ones.
func (s *Service) InstallLibraries(ctx context.Context, names []string) ([]InstallReport, error) {
	reports := make([]InstallReport, 0, len(names))
	for _, name := range names {
		report, err := s.Install(ctx, name)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (s *Service) InstallCategory(ctx context.Context, category domain.Category) ([]InstallReport, error) {
	libraries, err := s.Libraries(ctx, category)
	if err != nil {
		return nil, err
	}

	return s.InstallLibraries(ctx, libraryNames(libraries))
}

func (s *Service) InstallAll(ctx context.Context) ([]InstallReport, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}

	var reports []InstallReport
	for _, category := range categories {
		categoryReports, err := s.InstallCategory(ctx, category)
		reports = append(reports, categoryReports...)
		if err != nil {
			return reports, err
		}
	}

	return reports, nil
}

func (s *Service) History(ctx context.Context) ([]domain.InstallRecord, error) {
	records, err := s.journal.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read install history: %w", err)
	}

	return records, nil
}

func libraryNames(libraries []domain.Library) []string {
	names := make([]string, 0, len(libraries))
	for _, library := range libraries {
		names = append(names, library.Name)
	}

	return names
}
