package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/santonidylan/SimuladorCarritoEntrega2/internal/testutil"
)

// testOptions returns options with a fresh database, a silent logger and
// deterministic order IDs.
func testOptions(t *testing.T, variant string) *RootOptions {
	t.Helper()
	return &RootOptions{
		Format:   "text",
		Variant:  variant,
		Database: filepath.Join(t.TempDir(), "carrito.db"),
		Logger:   zap.NewNop(),
		OrderIDs: testutil.NewSequentialIDs("").Next,
	}
}

// remoteOptions is testOptions for the remote variant over a catalog file.
func remoteOptions(t *testing.T) *RootOptions {
	t.Helper()
	opts := testOptions(t, "remote")
	opts.Catalog = testutil.WriteCatalogFile(t, testutil.CatalogJSON)
	return opts
}

func execute(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// cartCmd runs one cart subcommand with opts.
func cartCmd(opts *RootOptions, args ...string) (string, error) {
	return execute(NewCartCommand(opts), args...)
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}
