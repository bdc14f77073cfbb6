package main

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/angemarius939/datarw-core/internal/api"
	"github.com/angemarius939/datarw-core/internal/config"
	"github.com/angemarius939/datarw-core/internal/logger"
	"github.com/angemarius939/datarw-core/internal/models"
	"github.com/angemarius939/datarw-core/internal/services"
)

// fileActivityStore adapts a JSON dump of stored activity records to the
// export service's store interface.
type fileActivityStore struct {
	path string
}

func (s *fileActivityStore) ListActivities() ([]models.ActivityRecord, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var records []models.ActivityRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func main() {
	var (
		input     = flag.String("input", "activities.json", "JSON file with stored activity records")
		refInput  = flag.String("refdata", "", "optional JSON file with {projects:[],users:[]} reference data")
		format    = flag.String("format", services.FormatCSV, "output format: csv or xlsx")
		sheet     = flag.String("sheet", "Activities", "sheet name for xlsx output")
		project   = flag.String("project", "", "filter: project id")
		status    = flag.String("status", "", "filter: status")
		risk      = flag.String("risk", "", "filter: risk level")
		team      = flag.String("team", "", "filter: team")
		search    = flag.String("search", "", "filter: name/description substring")
		budgetMin = flag.String("budget-min", "", "filter: minimum budget (inclusive)")
		budgetMax = flag.String("budget-max", "", "filter: maximum budget (inclusive)")
		from      = flag.String("from", "", "filter: earliest start date (yyyy-MM-dd, inclusive)")
		to        = flag.String("to", "", "filter: latest end date (yyyy-MM-dd, inclusive)")
		allCols   = flag.Bool("all-columns", false, "ignore the saved column selection")
	)
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	refdata := api.NewReferenceData()
	if *refInput != "" {
		if err := loadRefData(refdata, *refInput); err != nil {
			log.Warn().Err(err).Str("file", *refInput).Msg("reference data unavailable, exporting raw ids")
		}
	}

	prefs := api.NewFilePreferenceStore(cfg.PrefsPath)
	columns := services.NewColumnService(prefs, log)
	selected := columns.VisibleColumns()
	if *allCols {
		selected = nil
	}

	filter, err := buildFilter(*project, *status, *risk, *team, *search, *budgetMin, *budgetMax, *from, *to)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid filter")
	}

	projector := services.NewProjector(cfg.ExportLocale, refdata.Lookup())
	svc := services.NewExportService(&fileActivityStore{path: *input}, projector)

	res, err := svc.ExportActivities(services.ExportParams{
		Format:    *format,
		Columns:   selected,
		Filter:    filter,
		SheetName: *sheet,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("export failed")
	}

	if err := os.MkdirAll(cfg.ExportDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("could not create export directory")
	}
	outPath := filepath.Join(cfg.ExportDir, res.Filename)
	if err := os.WriteFile(outPath, res.Data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("could not write export file")
	}
	log.Info().Str("file", outPath).Str("content_type", res.ContentType).Int("bytes", len(res.Data)).Msg("export written")
}

func loadRefData(ref *api.ReferenceData, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var payload struct {
		Projects []api.Ref `json:"projects"`
		Users    []api.Ref `json:"users"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return err
	}
	ref.SetProjects(payload.Projects)
	ref.SetUsers(payload.Users)
	return nil
}

func buildFilter(project, status, risk, team, search, budgetMin, budgetMax, from, to string) (services.ActivityFilter, error) {
	f := services.ActivityFilter{
		ProjectID: project,
		Status:    models.ActivityStatus(status),
		RiskLevel: models.RiskLevel(risk),
		Team:      team,
		Search:    search,
	}
	if budgetMin != "" {
		v, err := strconv.ParseFloat(budgetMin, 64)
		if err != nil {
			return f, err
		}
		f.BudgetMin = &v
	}
	if budgetMax != "" {
		v, err := strconv.ParseFloat(budgetMax, 64)
		if err != nil {
			return f, err
		}
		f.BudgetMax = &v
	}
	if from != "" {
		t, err := time.Parse(services.DateLayout, from)
		if err != nil {
			return f, err
		}
		f.DateFrom = &t
	}
	if to != "" {
		t, err := time.Parse(services.DateLayout, to)
		if err != nil {
			return f, err
		}
		f.DateTo = &t
	}
	return f, nil
}
