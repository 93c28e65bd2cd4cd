package history

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dtnitsch/text-analyzer/pkg/db"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// HistoryAction lists recorded analysis runs, newest first.
func HistoryAction(c *cli.Context) error {
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer database.Close()

	var runs []db.Run
	if file := c.String("file"); file != "" {
		runs, err = database.RunsForFile(file, c.Int("limit"))
	} else {
		runs, err = database.ListRuns(c.Int("limit"))
	}
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	switch format := c.String("format"); format {
	case "", "text":
		return renderText(runs)
	case "yaml":
		yamlBytes, err := yaml.Marshal(runs)
		if err != nil {
			return fmt.Errorf("failed to marshal runs: %w", err)
		}
		fmt.Print(string(yamlBytes))
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func renderText(runs []db.Run) error {
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILE\tANALYZED\tCHARS\tWORDS\tLINES\tDISTINCT\tLANG")
	for _, run := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
			run.RunID, run.FileName, run.AnalyzedAt.Format("2006-01-02 15:04:05"),
			run.CharCount, run.WordCount, run.LineCount, run.DistinctWords, run.Language)
	}
	return w.Flush()
}
