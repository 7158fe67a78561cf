// buildcost CLI - Building Materials & Cost Estimator
//
// Usage:
//
//	buildcost estimate --area 1500 --bedrooms 3 [options]
//	buildcost rates list
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"building-cost/decision/estimation"
	"building-cost/internal/rates"
	"building-cost/pkg/platform"
	"building-cost/pkg/units"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:    "buildcost",
		Usage:   "Building Materials & Cost Estimator - Bangalore construction rates",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"BUILDCOST_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:  "rates",
				Value: platform.GetEnv("BUILDCOST_RATES", ""),
				Usage: "Path to a rate table YAML file (default: built-in Bangalore rates)",
			},
		},

		Before: func(c *cli.Context) error {
			platform.InitLogger(c.String("log-level"))
			return nil
		},

		Commands: []*cli.Command{
			estimateCommand(),
			ratesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		platform.LogFatal(slog.Default(), "command failed", err)
	}
}

// loadTable resolves the active rate table from the --rates flag.
func loadTable(c *cli.Context) (*rates.Table, error) {
	path := c.String("rates")
	if path == "" {
		return rates.Default(), nil
	}
	table, err := rates.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate table: %w", err)
	}
	slog.Debug("loaded rate table override", "path", path)
	return table, nil
}

// =============================================================================
// ESTIMATE COMMAND
// =============================================================================

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Estimate materials and cost for a house",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:     "area",
				Aliases:  []string{"a"},
				Usage:    "Total floor area in square feet",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "bedrooms",
				Aliases:  []string{"b"},
				Usage:    "Number of bedrooms (BHK)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "area-type",
				Aliases: []string{"t"},
				Value:   estimation.DefaultAreaType,
				Usage:   "Area measurement convention (Super built-up, Built-up, Plot, Carpet)",
				EnvVars: []string{"BUILDCOST_AREA_TYPE"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "table",
				Usage:   "Output format (table, json, markdown)",
			},
		},
		Action: runEstimate,
	}
}

func runEstimate(c *cli.Context) error {
	table, err := loadTable(c)
	if err != nil {
		return err
	}

	engine := estimation.NewEngine(table)
	result, err := engine.Estimate(estimation.Request{
		TotalArea: c.Float64("area"),
		Bedrooms:  c.Int("bedrooms"),
		AreaType:  c.String("area-type"),
	})
	if err != nil {
		return fmt.Errorf("estimation failed: %w", err)
	}

	switch c.String("format") {
	case "json":
		return outputJSON(result)
	case "markdown":
		return outputMarkdown(result)
	default:
		return outputTable(result)
	}
}

// =============================================================================
// OUTPUT FORMATTERS
// =============================================================================

func outputJSON(result *estimation.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func outputTable(result *estimation.Result) error {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                🏠 MATERIALS & COST ESTIMATE                   ║")
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  Area:        %-46s  ║\n",
		fmt.Sprintf("%.0f sq.ft (%.1f m²)", result.TotalArea, units.SqftToSqm(result.TotalArea)))
	fmt.Printf("║  Config:      %-46s  ║\n",
		fmt.Sprintf("%d BHK, %s", result.Bedrooms, result.AreaType))
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")

	for _, item := range result.Materials {
		name := truncate(fmt.Sprintf("%s %s", item.Icon, item.Name), 20)
		qty := fmt.Sprintf("%s %s", item.Quantity.StringFixed(1), item.Unit)
		fmt.Printf("║  %-20s %-24s %12s  ║\n", name, truncate(qty, 24), item.CostFormatted)
	}

	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  TOTAL COST   %46s  ║\n", result.TotalCostFormatted)
	fmt.Printf("║  Cost/sq.ft   %46s  ║\n", result.CostPerSqftFormatted)
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")

	return nil
}

func outputMarkdown(result *estimation.Result) error {
	fmt.Println("## 🏠 Materials & Cost Estimate")
	fmt.Println()
	fmt.Printf("**%.0f sq.ft, %d BHK, %s**\n", result.TotalArea, result.Bedrooms, result.AreaType)
	fmt.Println()
	fmt.Println("| Material | Quantity | Unit | Rate | Cost |")
	fmt.Println("|----------|----------|------|------|------|")

	for _, item := range result.Materials {
		fmt.Printf("| %s %s | %s | %s | ₹%s | %s |\n",
			item.Icon, item.Name,
			item.Quantity.StringFixed(1), item.Unit,
			item.Rate.StringFixed(0), item.CostFormatted)
	}

	fmt.Println()
	fmt.Printf("**Total:** %s  \n", result.TotalCostFormatted)
	fmt.Printf("**Cost per sq.ft:** %s\n", result.CostPerSqftFormatted)

	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// =============================================================================
// RATES COMMAND
// =============================================================================

func ratesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rates",
		Usage: "Inspect the active rate table",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List materials, rates and adjustment multipliers",
				Action: func(c *cli.Context) error {
					table, err := loadTable(c)
					if err != nil {
						return err
					}

					fmt.Println("Materials:")
					for _, m := range table.Materials() {
						fmt.Printf("  %s %-15s ₹%s per %s (%.2f %s/sq.ft)\n",
							m.Icon, m.ID, m.Rate.StringFixed(0), m.Unit, m.PerAreaFactor, m.Unit)
					}

					fmt.Println()
					fmt.Println("Bedroom multipliers:")
					for count := 1; count <= rates.MaxBedroomTier; count++ {
						fmt.Printf("  %d BHK: %.2f\n", count, table.BedroomMultiplier(count))
					}

					fmt.Println()
					fmt.Println("Area-type multipliers:")
					for _, label := range table.AreaTypes() {
						fmt.Printf("  %-22s %.2f\n", label, table.AreaTypeMultiplier(label))
					}
					return nil
				},
			},
		},
	}
}
