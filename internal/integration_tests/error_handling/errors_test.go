package integration_tests

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/vcfconvert/internal/app"
	"github.com/specialistvlad/vcfconvert/internal/cli"
	"github.com/specialistvlad/vcfconvert/internal/testutil"
)

func TestErrors_InvalidProfileIsRejected(t *testing.T) {
	t.Parallel()

	h := testutil.NewHarness(t, map[string]string{
		"contacts.vcf": testutil.PlainContact,
		"bad.hcl":      "output {\n  formats = [\"csv\"\n",
	})

	result := h.Run("--profile", "@bad.hcl", "@contacts.vcf")

	var exitErr *cli.ExitError
	require.True(t, errors.As(result.Err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "failed to parse HCL file")
}

func TestErrors_UnknownFormatInProfile(t *testing.T) {
	t.Parallel()

	h := testutil.NewHarness(t, map[string]string{
		"contacts.vcf": testutil.PlainContact,
		"p.hcl":        "output {\n  formats = [\"xml\"]\n}\n",
	})

	result := h.Run("--profile", "@p.hcl", "@contacts.vcf")

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "unknown output format 'xml'")
}

func TestErrors_ExistingOutputIsProtected(t *testing.T) {
	t.Parallel()

	h := testutil.NewHarness(t, map[string]string{
		"contacts.vcf":     testutil.PlainContact,
		"contacts.vcf.csv": "precious",
	})

	result := h.Run("-c", "--no-progress", "@contacts.vcf")

	require.ErrorIs(t, result.Err, app.ErrOutputExists)
	assert.Equal(t, "precious", h.ReadFile("contacts.vcf.csv"))

	result = h.Run("-c", "--overwrite", "--no-progress", "@contacts.vcf")
	require.NoError(t, result.Err)
	assert.NotEqual(t, "precious", h.ReadFile("contacts.vcf.csv"))
}

func TestErrors_InputValidation(t *testing.T) {
	t.Parallel()

	h := testutil.NewHarness(t, map[string]string{"contacts.txt": testutil.PlainContact})

	result := h.Run("-c", "@contacts.txt")
	require.ErrorIs(t, result.Err, app.ErrInputExtension)

	result = h.Run("-c", "@missing.vcf")
	require.ErrorIs(t, result.Err, app.ErrInputNotFound)
	_, statErr := os.Stat(h.Path("missing.vcf.csv"))
	assert.True(t, os.IsNotExist(statErr))
}
