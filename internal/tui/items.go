package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/alexander-akhmetov/paintourney/internal/config"
	"github.com/alexander-akhmetov/paintourney/internal/domain"
	"github.com/alexander-akhmetov/paintourney/internal/store"
)

var itemsFlags struct {
	dataDir string
	json    bool
}

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List and validate the items of a data directory",
	Long: `Load every record of the data directory the same way "play" does and list
the items. A malformed record fails the command, which makes it usable as a
validation step without starting the UI.`,
	Args: cobra.NoArgs,
	RunE: runItems,
}

func init() {
	itemsCmd.Flags().StringVarP(&itemsFlags.dataDir, "data-dir", "d", "", "Directory with item records (overrides data_dir)")
	itemsCmd.Flags().BoolVar(&itemsFlags.json, "json", false, "Print the items as JSON")
}

func runItems(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(config.CLIFlags{DataDir: itemsFlags.dataDir})
	if err != nil {
		return err
	}
	dir := cfg.DataDir
	items, err := store.Load(dir)
	if err != nil {
		return err
	}

	if itemsFlags.json {
		out, err := itemsJSON(dir, items)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	writeItems(cmd.OutOrStdout(), dir, items)
	return nil
}

// itemsJSON renders {"data_dir": ..., "count": ..., "items": [...]}.
func itemsJSON(dir string, items []domain.Item) ([]byte, error) {
	doc := `{"items":[]}`
	var err error
	if doc, err = sjson.Set(doc, "data_dir", dir); err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}
	if doc, err = sjson.Set(doc, "count", len(items)); err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}
	for _, it := range items {
		doc, err = sjson.Set(doc, "items.-1", map[string]string{
			"name":        it.Name,
			"description": it.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to encode item %q: %w", it.Name, err)
		}
	}
	return pretty.Pretty([]byte(doc)), nil
}

const itemsWidth = 72

func writeItems(w io.Writer, dir string, items []domain.Item) {
	fmt.Fprintln(w, titleStyle.Render("Items in "+abbreviatePath(dir)))
	for _, it := range items {
		fmt.Fprintln(w, valueStyle.Render(it.Name))
		if desc := wrapText(strings.TrimSpace(it.Description), itemsWidth, "  ", 2); desc != "" {
			fmt.Fprintln(w, labelStyle.Render("  "+desc))
		}
	}
	noun := "items"
	if len(items) == 1 {
		noun = "item"
	}
	fmt.Fprintf(w, "\n%d %s\n", len(items), noun)
}
