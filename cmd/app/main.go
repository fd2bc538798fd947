package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ovreland/teamload/internal/config"
	"github.com/ovreland/teamload/internal/database"
	"github.com/ovreland/teamload/internal/tui"
	"github.com/ovreland/teamload/internal/util"
)

func main() {
	seed := flag.Bool("seed", false, "seed demo data into an empty database")
	exportPath := flag.String("export", "", "write a JSON export to the given path and exit")
	importPath := flag.String("import", "", "replace the database with the given JSON export and exit")
	protect := flag.Bool("protect", false, "encrypt the export with a passphrase")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		util.LogError("loading config", err)
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	dbRoot := util.DataDir(config.AppName)
	util.MustSucceed("creating data directory", os.MkdirAll(dbRoot, 0o755))
	dbPath := filepath.Join(dbRoot, config.DBFileName)

	db, err := database.Open(ctx, dbPath)
	if err != nil {
		fmt.Printf("Cannot open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if *seed {
		if err := db.SeedDemoData(ctx); err != nil {
			fmt.Printf("Seeding failed: %v\n", err)
			os.Exit(1)
		}
	}

	if *exportPath != "" {
		passphrase := ""
		if *protect {
			passphrase, err = promptNewPassphrase()
			if err != nil {
				fmt.Printf("Cannot read passphrase: %v\n", err)
				os.Exit(1)
			}
		}
		if err := runExport(ctx, db, *exportPath, passphrase); err != nil {
			fmt.Printf("Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported to %s\n", *exportPath)
		return
	}

	if *importPath != "" {
		if err := runImport(ctx, db, *importPath, ""); err != nil {
			if !errors.Is(err, database.ErrExportEncrypted) {
				fmt.Printf("Import failed: %v\n", err)
				os.Exit(1)
			}
			passphrase, perr := promptForKey("Export passphrase: ")
			if perr != nil {
				fmt.Printf("Cannot read passphrase: %v\n", perr)
				os.Exit(1)
			}
			if err := runImport(ctx, db, *importPath, passphrase); err != nil {
				fmt.Printf("Import failed: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Printf("Imported %s\n", *importPath)
		return
	}

	model := tui.NewDashboardModel(ctx, db, *cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(ctx context.Context, db *database.Database, path, passphrase string) error {
	data, err := db.ExportJSON(ctx, passphrase)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o600)
}

func runImport(ctx context.Context, db *database.Database, path, passphrase string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return db.ImportJSON(ctx, data, passphrase)
}

func promptNewPassphrase() (string, error) {
	for {
		pass, err := promptForKey("Set export passphrase: ")
		if err != nil {
			return "", err
		}
		if err := util.ValidatePassphrase(pass); err != nil {
			fmt.Fprintf(os.Stderr, "Passphrase too weak: %v\n", err)
			continue
		}
		confirm, err := promptForKey("Confirm passphrase: ")
		if err != nil {
			return "", err
		}
		if pass != confirm {
			fmt.Fprintln(os.Stderr, "Passphrases do not match.")
			continue
		}
		return pass, nil
	}
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
