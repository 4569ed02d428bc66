package climate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadEngine builds an engine from a rule table file, or the built-in table when path is empty.
func LoadEngine(path string) (*Engine, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	rules, err := LoadRules(path)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("%s: no rules loaded", path)
	}
	return NewEngine(rules)
}

// LoadRules reads a rule table from .csv, .xlsx or .yaml/.yml.
func LoadRules(path string) ([]Rule, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx":
		return loadXLSX(path)
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported rule file %q", path)
	}
}

func loadCSV(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return parseRows(rows)
}

func loadXLSX(path string) ([]Rule, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", path)
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

func loadYAML(path string) ([]Rule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rf ruleFile
	if err := yaml.Unmarshal(b, &rf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rf.Rules, nil
}

// MarshalYAML renders rules in the format loadYAML reads.
func MarshalYAML(rules []Rule) ([]byte, error) {
	return yaml.Marshal(ruleFile{Rules: rules})
}

// parseRows reads a header row plus data rows shared by the CSV and XLSX readers.
func parseRows(rows [][]string) ([]Rule, error) {
	if len(rows) == 0 {
		return nil, errors.New("rule table is empty")
	}
	head := rows[0]

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF")
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cAct := findAny("activity", "kegiatan")
	cFac := findAny("factor", "faktor")
	cVal := findAny("value", "nilai")
	cBelow := findAny("below", "lessthan", "threshold")
	cDelta := findAny("delta", "days", "adjustment")
	if cAct == -1 || cFac == -1 || cDelta == -1 {
		return nil, fmt.Errorf("rule table missing required columns. Found headers: %v. Need at least: activity, factor, delta", head)
	}

	var out []Rule
	for n, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		if get(cAct) == "" && get(cFac) == "" {
			continue
		}
		delta, err := strconv.Atoi(strings.TrimPrefix(get(cDelta), "+"))
		if err != nil {
			return nil, fmt.Errorf("row %d: bad delta %q", n+2, get(cDelta))
		}
		r := Rule{
			Activity: Activity(get(cAct)),
			Factor:   Factor(get(cFac)),
			Value:    get(cVal),
			Delta:    delta,
		}
		if s := get(cBelow); s != "" {
			v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad threshold %q", n+2, s)
			}
			r.Below = &v
		}
		out = append(out, r)
	}
	return out, nil
}
