package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lamp/pkg/types"
)

func (c *cli) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize lamp storage",
		Long: "Write config.yaml if it is missing, create the data directory, and seed\n" +
			"the verse catalog. Running init again is safe.",
		Args: cobra.NoArgs,
		RunE: c.runInit,
	}
}

func (c *cli) runInit(cmd *cobra.Command, args []string) error {
	cfg, err := c.appConfig()
	if err != nil {
		return err
	}

	file := configFile{
		Backend:      cfg.Backend,
		HistoryLimit: cfg.GetHistoryLimit(),
	}
	if c.flags.dataDir != "" {
		file.DataDir = cfg.DataDir
	}
	wrote, err := writeConfigIfMissing(c.configDir, file)
	if err != nil {
		return storageErr("init config", err)
	}

	return c.withSession(cmd, func(s session) error {
		books, verses, err := s.app.CatalogCounts(cmd.Context())
		if err != nil {
			return err
		}
		result := struct {
			ConfigDir     string       `json:"config_dir"`
			ConfigWritten bool         `json:"config_written"`
			Config        types.Config `json:"config"`
			Books         int          `json:"books"`
			Verses        int          `json:"verses"`
		}{c.configDir, wrote, cfg, books, verses}

		return c.emit(cmd, result, func(w io.Writer) {
			fmt.Fprintf(w, "Lamp initialized: %d books, %d verses, data in %s\n", books, verses, cfg.DataDir)
		})
	})
}
