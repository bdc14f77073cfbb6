package services

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/angemarius939/datarw-core/internal/models"
)

const timestampLayout = "2006-01-02 15:04"

// Column pairs a stable key with its display header.
type Column struct {
	Key    string
	Header string
}

// ActivityColumns is the full export column catalog, in default order.
var ActivityColumns = []Column{
	{Key: "project", Header: "Project"},
	{Key: "name", Header: "Name"},
	{Key: "description", Header: "Description"},
	{Key: "assigned_to", Header: "Assigned To"},
	{Key: "team", Header: "Team"},
	{Key: "status", Header: "Status"},
	{Key: "risk_level", Header: "Risk Level"},
	{Key: "start_date", Header: "Start Date"},
	{Key: "end_date", Header: "End Date"},
	{Key: "planned_start_date", Header: "Planned Start"},
	{Key: "planned_end_date", Header: "Planned End"},
	{Key: "progress", Header: "Progress (%)"},
	{Key: "budget_allocated", Header: "Budget Allocated"},
	{Key: "budget_spent", Header: "Budget Spent"},
	{Key: "variance", Header: "Variance"},
	{Key: "planned_output", Header: "Planned Output"},
	{Key: "target_quantity", Header: "Target Quantity"},
	{Key: "achieved_quantity", Header: "Achieved Quantity"},
	{Key: "milestones", Header: "Milestones"},
	{Key: "deliverables", Header: "Deliverables"},
	{Key: "tags", Header: "Tags"},
	{Key: "created_at", Header: "Created At"},
	{Key: "updated_at", Header: "Updated At"},
}

// NameLookup maps collaborator-supplied reference data ids to display names.
type NameLookup struct {
	Projects map[string]string
	Users    map[string]string
}

// Table is a projected, export-ready grid: one header row plus data rows in
// the selected-column order.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Projector renders activity records into flat cells. The locale drives
// number grouping in money columns.
type Projector struct {
	printer *message.Printer
	lookup  NameLookup
}

// NewProjector builds a projector for the given BCP 47 locale tag; an
// unparsable tag falls back to English.
func NewProjector(locale string, lookup NameLookup) *Projector {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Projector{printer: message.NewPrinter(tag), lookup: lookup}
}

// ProjectActivities maps records to a table restricted to columnKeys, in
// that order. Unknown keys are skipped. Nil columnKeys selects everything.
func (p *Projector) ProjectActivities(records []models.ActivityRecord, columnKeys []string) Table {
	cols := selectColumns(columnKeys)
	t := Table{Headers: make([]string, len(cols))}
	for i, c := range cols {
		t.Headers[i] = c.Header
	}
	t.Rows = make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = p.cell(rec, c.Key)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func selectColumns(keys []string) []Column {
	if keys == nil {
		return ActivityColumns
	}
	byKey := map[string]Column{}
	for _, c := range ActivityColumns {
		byKey[c.Key] = c
	}
	out := make([]Column, 0, len(keys))
	for _, k := range keys {
		if c, ok := byKey[k]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (p *Projector) cell(rec models.ActivityRecord, key string) string {
	switch key {
	case "project":
		return lookupName(p.lookup.Projects, rec.ProjectID)
	case "name":
		return rec.Name
	case "description":
		return rec.Description
	case "assigned_to":
		return lookupName(p.lookup.Users, rec.AssignedTo)
	case "team":
		return rec.AssignedTeam
	case "status":
		return string(rec.Status)
	case "risk_level":
		return string(rec.RiskLevel)
	case "start_date":
		return formatDate(rec.StartDate)
	case "end_date":
		return formatDate(rec.EndDate)
	case "planned_start_date":
		return formatDate(rec.PlannedStartDate)
	case "planned_end_date":
		return formatDate(rec.PlannedEndDate)
	case "progress":
		// Count-like: absent means zero.
		return strconv.Itoa(int(coalesce(rec.ProgressPercentage) + 0.5))
	case "budget_allocated":
		return p.money(coalesce(rec.BudgetAllocated), rec.Currency)
	case "budget_spent":
		return p.money(coalesce(rec.BudgetSpent), rec.Currency)
	case "variance":
		return p.money(coalesce(rec.BudgetAllocated)-coalesce(rec.BudgetSpent), rec.Currency)
	case "planned_output":
		return rec.PlannedOutput
	case "target_quantity":
		return quantity(rec.TargetQuantity, rec.Unit)
	case "achieved_quantity":
		return quantity(rec.AchievedQuantity, rec.Unit)
	case "milestones":
		parts := make([]string, len(rec.Milestones))
		for i, m := range rec.Milestones {
			parts[i] = m.Name + " (" + m.PlannedDate + ")"
		}
		return strings.Join(parts, "; ")
	case "deliverables":
		return strings.Join(rec.Deliverables, "; ")
	case "tags":
		return strings.Join(rec.Tags, "; ")
	case "created_at":
		return rec.CreatedAt.Format(timestampLayout)
	case "updated_at":
		return rec.UpdatedAt.Format(timestampLayout)
	}
	return ""
}

func lookupName(table map[string]string, id string) string {
	if name, ok := table[id]; ok && name != "" {
		return name
	}
	return id
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

func coalesce(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// money renders a locale-grouped amount, with the currency code as a suffix
// only when one is set.
func (p *Projector) money(v float64, currency string) string {
	s := p.printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// quantity distinguishes "not set" from zero: absent values render as "-".
// A unit is suffixed only when present.
func quantity(v *float64, unit string) string {
	if v == nil {
		return "-"
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}
