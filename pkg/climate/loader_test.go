package climate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadEngine_EmptyPathUsesDefaults(t *testing.T) {
	e, err := LoadEngine("")
	require.NoError(t, err)
	assert.Len(t, e.Rules(), len(DefaultRules()))
}

func TestLoadRules_CSV(t *testing.T) {
	p := writeFile(t, "rules.csv", "\uFEFFActivity,Factor,Value,Below,Delta\n"+
		"watering,soil_type,Pasir,,-2\n"+
		"fertilizing,soil_ph,,\"6,0\",+1\n"+
		",,,,\n")

	e, err := LoadEngine(p)
	require.NoError(t, err)
	require.Len(t, e.Rules(), 2)

	assert.Equal(t, 1, e.Adjust(Watering, 3, Conditions{SoilType: "sand"}))
	ph := 5.9
	assert.Equal(t, 15, e.Adjust(Fertilizing, 14, Conditions{SoilPH: &ph}))
}

func TestLoadRules_CSVMissingColumns(t *testing.T) {
	p := writeFile(t, "rules.csv", "factor,value\nsoil_type,sand\n")
	_, err := LoadRules(p)
	assert.ErrorContains(t, err, "missing required columns")
}

func TestLoadRules_CSVBadDelta(t *testing.T) {
	p := writeFile(t, "rules.csv", "activity,factor,value,delta\nwatering,soil_type,sand,minus one\n")
	_, err := LoadRules(p)
	assert.ErrorContains(t, err, "row 2")
}

func TestLoadRules_YAMLRoundTrip(t *testing.T) {
	b, err := MarshalYAML(DefaultRules())
	require.NoError(t, err)
	p := writeFile(t, "rules.yaml", string(b))

	e, err := LoadEngine(p)
	require.NoError(t, err)
	assert.Equal(t, Default().Rules(), e.Rules())
}

func TestLoadRules_XLSX(t *testing.T) {
	x := excelize.NewFile()
	defer x.Close()
	sheet := x.GetSheetName(0)
	rows := [][]any{
		{"activity", "factor", "value", "below", "delta"},
		{"watering", "humidity", "Tinggi (>70%)", "", "2"},
		{"fertilizing", "altitude", "highland", "", "3"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, x.SetSheetRow(sheet, cell, &row))
	}
	p := filepath.Join(t.TempDir(), "rules.xlsx")
	require.NoError(t, x.SaveAs(p))

	e, err := LoadEngine(p)
	require.NoError(t, err)
	assert.Equal(t, 5, e.Adjust(Watering, 3, Conditions{Humidity: "high"}))
	assert.Equal(t, 17, e.Adjust(Fertilizing, 14, Conditions{Altitude: "Dataran Tinggi"}))
}

func TestLoadRules_UnsupportedExtension(t *testing.T) {
	_, err := LoadRules("rules.json")
	assert.ErrorContains(t, err, "unsupported")
}
