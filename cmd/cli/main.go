package main

import (
	"fmt"
	"log"
	"os"

	"marketgps/cmd"
	"marketgps/internal/db/models/postgres/public/model"
	"marketgps/internal/util"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// starter template rows, one block per line, grouped by template name
type templateSeedRow struct {
	TemplateName string   `csv:"template_name"`
	Description  string   `csv:"description"`
	BlockName    string   `csv:"block_name"`
	Weight       float64  `csv:"weight"`
	MinWeight    *float64 `csv:"min_weight"`
	MaxWeight    *float64 `csv:"max_weight"`
	Group        *string  `csv:"group"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "marketgps",
		Short: "MarketGPS allocation service",
	}

	var port int
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the allocation API",
		RunE: func(c *cobra.Command, args []string) error {
			apiHandler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)
			return apiHandler.StartApi(port)
		},
	}
	serveCmd.Flags().IntVar(&port, "port", 3009, "port to listen on")

	var csvPath string
	seedCmd := &cobra.Command{
		Use:   "seed-templates",
		Short: "Load shared starter templates from a CSV",
		RunE: func(c *cobra.Command, args []string) error {
			return seedTemplates(csvPath)
		},
	}
	seedCmd.Flags().StringVar(&csvPath, "csv", "templates.csv", "path to the template CSV")

	rootCmd.AddCommand(serveCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func seedTemplates(csvPath string) error {
	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(apiHandler)

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", csvPath, err)
	}
	defer f.Close()

	rows := []templateSeedRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return fmt.Errorf("failed to parse template csv: %w", err)
	}

	// preserve csv order both across and within templates
	templateOrder := []string{}
	rowsByTemplate := map[string][]templateSeedRow{}
	for _, row := range rows {
		if _, ok := rowsByTemplate[row.TemplateName]; !ok {
			templateOrder = append(templateOrder, row.TemplateName)
		}
		rowsByTemplate[row.TemplateName] = append(rowsByTemplate[row.TemplateName], row)
	}

	for _, templateName := range templateOrder {
		templateRows := rowsByTemplate[templateName]

		blocks := make([]model.StrategyTemplateBlock, 0, len(templateRows))
		for _, row := range templateRows {
			block := model.StrategyTemplateBlock{
				BlockName:     row.BlockName,
				DefaultWeight: decimal.NewFromFloat(row.Weight),
				GroupName:     row.Group,
			}
			if row.MinWeight != nil {
				block.MinWeight = util.DecimalPointer(decimal.NewFromFloat(*row.MinWeight))
			}
			if row.MaxWeight != nil {
				block.MaxWeight = util.DecimalPointer(decimal.NewFromFloat(*row.MaxWeight))
			}
			blocks = append(blocks, block)
		}

		tx, err := apiHandler.Db.Begin()
		if err != nil {
			return err
		}

		template := model.StrategyTemplate{
			Name:   templateName,
			Shared: true,
		}
		if templateRows[0].Description != "" {
			template.Description = util.StrPointer(templateRows[0].Description)
		}

		if _, err := apiHandler.StrategyTemplateRepository.Add(tx, template, blocks); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed template %q: %w", templateName, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}

		fmt.Printf("seeded template %q with %d blocks\n", templateName, len(blocks))
	}

	return nil
}
