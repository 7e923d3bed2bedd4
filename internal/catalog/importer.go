package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"directorybolt/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// Format is the encoding of an import source.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatXLSX     Format = "xlsx"
)

// Source is one catalog file to import. Sources are merged in order, so the
// most complete one goes first.
type Source struct {
	Name   string
	Format Format
	Data   []byte
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", errors.Errorf("unsupported catalog file %q", path)
	}
}

// Parse decodes a source into directories with derived attributes filled.
func Parse(src Source) ([]domain.Directory, error) {
	var (
		dirs []domain.Directory
		err  error
	)

	switch src.Format {
	case FormatJSON:
		dirs, err = parseJSON(src.Data)
	case FormatMarkdown:
		dirs = parseMarkdown(src.Data)
	case FormatCSV:
		dirs, err = parseCSV(src.Data)
	case FormatXLSX:
		dirs, err = parseXLSX(src.Data)
	default:
		err = errors.Errorf("unknown format %q", src.Format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", src.Name)
	}

	for i := range dirs {
		fillDerived(&dirs[i])
	}

	return dirs, nil
}

type jsonDirectory struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	URL                  string `json:"url"`
	SubmissionURL        string `json:"submissionUrl"`
	Category             string `json:"category"`
	DomainAuthority      *int   `json:"domainAuthority"`
	Difficulty           string `json:"difficulty"`
	Priority             string `json:"priority"`
	Tier                 string `json:"tier"`
	TrafficPotential     int    `json:"trafficPotential"`
	RequiresRegistration bool   `json:"requiresRegistration"`
	ApprovalTime         string `json:"approvalTime"`
	HasCaptcha           bool   `json:"hasCaptcha"`
	IsActive             *bool  `json:"isActive"`
}

// parseJSON accepts either {"directories": [...]} or a bare array.
func parseJSON(data []byte) ([]domain.Directory, error) {
	var entries []jsonDirectory

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, errors.Wrap(err, "decode array")
		}
	} else {
		var doc struct {
			Directories []jsonDirectory `json:"directories"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decode catalog")
		}
		entries = doc.Directories
	}

	out := make([]domain.Directory, 0, len(entries))
	for _, e := range entries {
		d := domain.Directory{
			ID:                   e.ID,
			Name:                 strings.TrimSpace(e.Name),
			URL:                  NormalizeURL(e.URL),
			SubmissionURL:        NormalizeURL(e.SubmissionURL),
			Category:             e.Category,
			DomainAuthority:      DefaultDomainAuthority,
			Difficulty:           domain.Difficulty(e.Difficulty),
			Priority:             domain.Priority(e.Priority),
			Tier:                 domain.DirectoryTier(e.Tier),
			TrafficPotential:     e.TrafficPotential,
			RequiresRegistration: e.RequiresRegistration,
			ApprovalTime:         e.ApprovalTime,
			HasCaptcha:           e.HasCaptcha,
			IsActive:             e.IsActive == nil || *e.IsActive,
		}
		if e.DomainAuthority != nil {
			d.DomainAuthority = *e.DomainAuthority
		}
		if d.ID == "" {
			d.ID = IDFromURL(d.URL)
		}
		if d.ID == "" || d.Name == "" {
			continue
		}
		out = append(out, d)
	}

	return out, nil
}

var (
	//nolint: gochecknoglobals
	boldEntry = regexp.MustCompile(`\*\*([^*\n]+)\*\*\s*-\s*(https?://[^\s)]+)(?:\s*\(DA:\s*(\d+)\))?`)
	//nolint: gochecknoglobals
	plainEntry = regexp.MustCompile(`(?m)^(?:\d+\.\s+)?([A-Za-z][^-\n*]*?)\s+-\s+(https?://[^\s)]+)`)
)

// parseMarkdown extracts "**Name** - https://url (DA: 72)" entries, with or
// without list numbering, and plain "Name - https://url" lines.
func parseMarkdown(data []byte) []domain.Directory {
	var (
		out  []domain.Directory
		seen = make(map[string]struct{})
	)

	add := func(name, rawURL, da string) {
		u := NormalizeURL(rawURL)
		if _, ok := seen[u]; ok {
			return
		}
		seen[u] = struct{}{}

		d := domain.Directory{
			ID:              IDFromURL(u),
			Name:            strings.TrimSpace(name),
			URL:             u,
			DomainAuthority: DefaultDomainAuthority,
			IsActive:        true,
		}
		if n, err := strconv.Atoi(da); err == nil {
			d.DomainAuthority = n
		}
		if d.ID != "" && d.Name != "" {
			out = append(out, d)
		}
	}

	for _, m := range boldEntry.FindAllStringSubmatch(string(data), -1) {
		add(m[1], m[2], m[3])
	}
	for _, m := range plainEntry.FindAllStringSubmatch(string(data), -1) {
		add(m[1], m[2], "")
	}

	return out
}

func parseCSV(data []byte) ([]domain.Directory, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}

	return fromRows(rows)
}

func parseXLSX(data []byte) ([]domain.Directory, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %q", sheets[0])
	}

	return fromRows(rows)
}

// column aliases accepted in tabular headers
var columnAliases = map[string]string{ //nolint: gochecknoglobals
	"name":             "name",
	"directory":        "name",
	"directory name":   "name",
	"website":          "url",
	"url":              "url",
	"domain":           "url",
	"category":         "category",
	"da":               "da",
	"domain authority": "da",
	"submission url":   "submission",
	"submission_url":   "submission",
}

// fromRows maps a header row plus data rows onto directories.
func fromRows(rows [][]string) ([]domain.Directory, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		if alias, ok := columnAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, dup := cols[alias]; !dup {
				cols[alias] = i
			}
		}
	}
	if _, ok := cols["name"]; !ok {
		return nil, errors.New("missing name column")
	}
	if _, ok := cols["url"]; !ok {
		return nil, errors.New("missing website column")
	}

	cell := func(row []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[i])
	}

	out := make([]domain.Directory, 0, len(rows)-1)
	for _, row := range rows[1:] {
		d := domain.Directory{
			Name:            cell(row, "name"),
			URL:             NormalizeURL(cell(row, "url")),
			SubmissionURL:   NormalizeURL(cell(row, "submission")),
			Category:        cell(row, "category"),
			DomainAuthority: DefaultDomainAuthority,
			IsActive:        true,
		}
		if da, err := strconv.ParseFloat(cell(row, "da"), 64); err == nil {
			d.DomainAuthority = int(da + 0.5)
		}
		d.ID = IDFromURL(d.URL)
		if d.ID == "" || d.Name == "" {
			continue
		}
		out = append(out, d)
	}

	return out, nil
}
