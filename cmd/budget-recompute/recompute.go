package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sitebook/backend/internal/models"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

type recomputeCommand struct {
	DataDir      string
	Organization string
	DryRun       bool
	Verbose      bool

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
}

func newApp() *cli.App {
	command := &recomputeCommand{}
	return &cli.App{
		Name:    "budget-recompute",
		Usage:   "Recalculate the stored budget of sites from their budget items",
		Version: version,
		Before:  command.before,
		Action:  command.execute,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data-dir", Usage: "Directory of the SQLite database", EnvVars: []string{"DATA_DIR"}, Value: "data", Destination: &command.DataDir},
			&cli.StringFlag{Name: "organization", Usage: "Only recompute the sites of the organization with this ID", Destination: &command.Organization},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the changes without saving them", Destination: &command.DryRun},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log database queries", Destination: &command.Verbose},
			&cli.StringFlag{Name: "db-host", Usage: "PostgreSQL host. If set, PostgreSQL is used instead of SQLite", EnvVars: []string{"DB_HOST"}, Destination: &command.DBHost},
			&cli.StringFlag{Name: "db-user", Usage: "PostgreSQL user", EnvVars: []string{"DB_USER"}, Destination: &command.DBUser},
			&cli.StringFlag{Name: "db-password", Usage: "PostgreSQL password", EnvVars: []string{"DB_PASSWORD"}, Destination: &command.DBPassword},
			&cli.StringFlag{Name: "db-name", Usage: "PostgreSQL database", EnvVars: []string{"DB_NAME"}, Value: "sitebook", Destination: &command.DBName},
		},
	}
}

func (cmd *recomputeCommand) before(_ *cli.Context) error {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cmd.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	return nil
}

func (cmd *recomputeCommand) execute(c *cli.Context) error {
	organization := uuid.Nil
	if cmd.Organization != "" {
		id, err := uuid.Parse(cmd.Organization)
		if err != nil {
			return fmt.Errorf("organization: %w", err)
		}
		organization = id
	}

	if err := cmd.connect(); err != nil {
		return err
	}

	changes, err := recompute(models.DB.WithContext(c.Context), organization, cmd.DryRun)
	if err != nil {
		return err
	}

	printChanges(c.App.Writer, changes)

	if cmd.DryRun {
		log.Info().Int("sites", len(changes)).Msg("Dry run, nothing was saved")
		return nil
	}

	log.Info().Int("sites", len(changes)).Msg("Budgets updated")
	return nil
}

// connect opens PostgreSQL if a host is configured and the SQLite database
// in the data directory otherwise.
func (cmd *recomputeCommand) connect() error {
	if cmd.DBHost != "" {
		log.Debug().Str("host", cmd.DBHost).Str("database", cmd.DBName).Msg("Connecting to PostgreSQL")
		return models.ConnectPostgres(models.PostgresDSN(cmd.DBHost, cmd.DBUser, cmd.DBPassword, cmd.DBName))
	}

	path := filepath.Join(cmd.DataDir, "sitebook.db")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	log.Debug().Str("path", path).Msg("Opening SQLite database")
	return models.Connect(path)
}

// change is a site whose stored budget differs from its budget items.
type change struct {
	Site models.Site
	Old  string
	New  string
}

// recompute finds all sites whose stored budget is outdated and, unless
// dryRun is set, saves the recomputed budget.
//
// If organization is not uuid.Nil, only sites of that organization are
// considered.
func recompute(db *gorm.DB, organization uuid.UUID, dryRun bool) ([]change, error) {
	q := db.Order("sites.name ASC")
	if organization != uuid.Nil {
		q = q.Where(&models.Site{OrganizationID: organization})
	}

	var sites []models.Site
	if err := q.Find(&sites).Error; err != nil {
		return nil, fmt.Errorf("loading sites: %w", err)
	}

	changes := make([]change, 0)
	for _, site := range sites {
		total := site.BudgetBreakdown().Total
		if total.Equal(site.Budget) {
			continue
		}

		changes = append(changes, change{Site: site, Old: site.Budget.String(), New: total.String()})
		if dryRun {
			continue
		}

		// Saving runs the hooks, which store the recomputed budget
		if err := db.Save(&site).Error; err != nil {
			return changes, fmt.Errorf("saving site %s: %w", site.ID, err)
		}
	}

	return changes, nil
}

func printChanges(out io.Writer, changes []change) {
	if len(changes) == 0 {
		fmt.Fprintln(out, "All budgets are up to date.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprint(w, "Site\tName\tOld\tNew\n")
	for _, c := range changes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Site.ID, c.Site.Name, c.Old, c.New)
	}
}
