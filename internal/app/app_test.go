package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/specialistvlad/vcfconvert/internal/registry"
	"github.com/specialistvlad/vcfconvert/internal/vcard"
	"github.com/specialistvlad/vcfconvert/modules/console"
	"github.com/specialistvlad/vcfconvert/modules/csv"
	"github.com/specialistvlad/vcfconvert/modules/json"
)

const sampleVCF = "BEGIN:VCARD\r\n" +
	"VERSION:3.0\r\n" +
	"N:Doe;John;;;\r\n" +
	"FN:John Doe\r\n" +
	"TEL;type=CELL;type=VOICE;type=pref:(555) 123-4567\r\n" +
	"item1.EMAIL;type=INTERNET:john@example.com\r\n" +
	"item1.X-ABLabel:_$!<Other>!$_\r\n" +
	"X-CUSTOM:something\r\n" +
	"END:VCARD\r\n" +
	"BEGIN:VCARD\r\n" +
	"VERSION:3.0\r\n" +
	"N:Roe;Jane;;;\r\n" +
	"FN:Jane Roe\r\n" +
	"END:VCARD\r\n"

var fixedNow = time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_ConvertAllFormats(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	input := writeInput(t, dir, "contacts.vcf", sampleVCF)
	cfg := &Config{
		Command:     CommandConvert,
		InputPath:   input,
		OutputPath:  filepath.Join(dir, "out.csv"),
		Formats:     []string{"csv", "json", "yaml", "console"},
		FormatPhone: true,
		Preferred:   true,
	}
	a, out, logs := SetupAppTest(t, cfg, fixedNow)

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)

	csvData, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(csvData), `"555-123-4567"`)

	jsonData, err := os.ReadFile(filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	assert.Equal(t, "555-123-4567", gjson.GetBytes(jsonData, "0.Phone.Cell").String())
	assert.Contains(t, string(jsonData), `"Cell (Preferred)": "555-123-4567"`)
	assert.Equal(t, "john@example.com", gjson.GetBytes(jsonData, "0.Email.Other").String())
	assert.Equal(t, "X-CUSTOM:something", gjson.GetBytes(jsonData, "0.Unknown").String())
	assert.Equal(t, "Jane", gjson.GetBytes(jsonData, "1.Name.First").String())

	_, err = os.Stat(filepath.Join(dir, "out.yaml"))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "New vCard Entry:\n")
	assert.Contains(t, out.String(), "  Name: Full: Jane Roe\n")
	assert.Contains(t, logs.String(), "run_id=")
	assert.Contains(t, logs.String(), "Output written.")
}

func TestRun_DefaultOutputNameAndStamp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeInput(t, dir, "contacts.vcf", sampleVCF)
	cfg := &Config{
		Command:     CommandConvert,
		InputPath:   input,
		Formats:     []string{"csv"},
		StampSuffix: true,
		UTC:         true,
	}
	a, _, _ := SetupAppTest(t, cfg, fixedNow)

	require.NoError(t, a.Run(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "contacts.vcf-20240309T140506Z.csv"))
	require.NoError(t, err)
}

func TestRun_OutputExists(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	input := writeInput(t, dir, "contacts.vcf", sampleVCF)
	existing := writeInput(t, dir, "out.json", "keep me")
	cfg := &Config{
		Command:    CommandConvert,
		InputPath:  input,
		OutputPath: filepath.Join(dir, "out"),
		Formats:    []string{"csv", "json"},
	}
	a, _, _ := SetupAppTest(t, cfg, fixedNow)

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.ErrorIs(t, err, ErrOutputExists)
	assert.Contains(t, err.Error(), "out.json")
	data, readErr := os.ReadFile(existing)
	require.NoError(t, readErr)
	assert.Equal(t, "keep me", string(data))
	_, statErr := os.Stat(filepath.Join(dir, "out.csv"))
	assert.True(t, os.IsNotExist(statErr), "no file should be written when a target exists")
}

func TestRun_Overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeInput(t, dir, "contacts.vcf", sampleVCF)
	existing := writeInput(t, dir, "out.json", "old")
	cfg := &Config{
		Command:    CommandConvert,
		InputPath:  input,
		OutputPath: filepath.Join(dir, "out"),
		Formats:    []string{"json"},
		Overwrite:  true,
	}
	a, _, _ := SetupAppTest(t, cfg, fixedNow)

	require.NoError(t, a.Run(context.Background()))

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.True(t, gjson.ValidBytes(data))
}

func TestRun_UnknownReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeInput(t, dir, "contacts.vcf", sampleVCF)
	cfg := &Config{
		Command:   CommandConvert,
		InputPath: input,
		Formats:   []string{"csv"},
		Unknown:   true,
	}
	a, out, _ := SetupAppTest(t, cfg, fixedNow)

	err := a.Run(context.Background())

	require.ErrorIs(t, err, ErrUnknownReport)
	assert.Equal(t, "vCard Entry: John Doe\n  X-CUSTOM:something\n", out.String())
	_, statErr := os.Stat(filepath.Join(dir, "contacts.vcf.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_InputErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	txt := writeInput(t, dir, "contacts.txt", sampleVCF)
	upper := writeInput(t, dir, "CONTACTS.VCF", sampleVCF)

	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "missing", input: filepath.Join(dir, "missing.vcf"), wantErr: ErrInputNotFound},
		{name: "directory", input: dir, wantErr: ErrInputNotFound},
		{name: "wrong extension", input: txt, wantErr: ErrInputExtension},
		{name: "upper-case extension", input: upper},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{Command: CommandConvert, InputPath: tc.input, Formats: []string{"console"}}
			a, _, _ := SetupAppTest(t, cfg, fixedNow)

			err := a.Run(context.Background())

			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRun_EmptyInputWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeInput(t, dir, "empty.vcf", "\n\n")
	cfg := &Config{Command: CommandConvert, InputPath: input, Formats: []string{"csv"}}
	a, _, logs := SetupAppTest(t, cfg, fixedNow)

	require.NoError(t, a.Run(context.Background()))

	_, err := os.Stat(filepath.Join(dir, "empty.vcf.csv"))
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, logs.String(), "No vCard entries found")
}

// brokenModule registers a file renderer that always fails.
type brokenModule struct{}

func (brokenModule) Register(r *registry.Registry) {
	r.RegisterRenderer("broken", &registry.RegisteredRenderer{
		Extension: "txt",
		Fn: func(_ context.Context, w io.Writer, _ []vcard.Contact, _ registry.Options) error {
			_, _ = io.WriteString(w, "partial")
			return errors.New("render exploded")
		},
	})
}

func TestRun_RendererFailureDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	input := writeInput(t, dir, "contacts.vcf", sampleVCF)
	cfg := &Config{
		Command:    CommandConvert,
		InputPath:  input,
		OutputPath: filepath.Join(dir, "out"),
		Formats:    []string{"broken", "csv", "console"},
	}
	a, out, _ := SetupAppTest(t, cfg, fixedNow, brokenModule{}, &csv.Module{}, &console.Module{})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken output: render exploded")
	_, statErr := os.Stat(filepath.Join(dir, "out.txt"))
	assert.True(t, os.IsNotExist(statErr), "failed render must not leave a file behind")
	_, statErr = os.Stat(filepath.Join(dir, "out.csv"))
	assert.NoError(t, statErr)
	assert.Contains(t, out.String(), "New vCard Entry:")
}

func TestNewApp_UnknownFormat(t *testing.T) {
	t.Parallel()

	cfg := &Config{Command: CommandConvert, InputPath: "x.vcf", Formats: []string{"xml"}, LogLevel: "error", LogFormat: "text"}
	_, err := NewApp(io.Discard, io.Discard, cfg, &json.Module{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format 'xml'")
}

func TestRun_Stats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeInput(t, dir, "a.vcf", sampleVCF)
	writeInput(t, dir, "notes.txt", "ignored")
	cfg := &Config{Command: CommandStats, InputPath: dir}
	a, out, _ := SetupAppTest(t, cfg, fixedNow)

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), filepath.Join(dir, "a.vcf"))
	assert.Contains(t, out.String(), "Cards:")
	assert.NotContains(t, out.String(), "notes.txt")
}

func TestRun_StatsNoFiles(t *testing.T) {
	t.Parallel()

	cfg := &Config{Command: CommandStats, InputPath: t.TempDir()}
	a, _, _ := SetupAppTest(t, cfg, fixedNow)

	require.ErrorIs(t, a.Run(context.Background()), ErrInputNotFound)
}
