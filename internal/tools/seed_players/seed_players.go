package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/mcdev12/gridiron/internal/dbconfig"
	"github.com/mcdev12/gridiron/internal/models"
	"github.com/mcdev12/gridiron/internal/players"
)

// Seeds the NFL player catalog from a JSON dump. Rows are upserted by
// ID, so re-running refreshes stats instead of duplicating players.
func main() {
	ctx := context.Background()

	path := "internal/assets/nfl_players.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", path, err)
		os.Exit(1)
	}
	var catalog []models.NFLPlayer
	if err := json.Unmarshal(data, &catalog); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal players: %v\n", err)
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg, err := dbconfig.NewConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	database, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	repo := players.NewRepository(database)

	total, upserted, errs := len(catalog), 0, 0
	for _, player := range catalog {
		if _, ok := models.NFLTeams[player.NFLTeam]; !ok {
			fmt.Fprintf(os.Stderr, "skipping %s: unknown team %q\n", player.Name, player.NFLTeam)
			errs++
			continue
		}
		if _, err := repo.UpsertPlayer(ctx, player); err != nil {
			fmt.Fprintf(os.Stderr, "upsert %s: %v\n", player.Name, err)
			errs++
			continue
		}
		upserted++
	}
	fmt.Printf("Player seed: total=%d upserted=%d errors=%d\n", total, upserted, errs)
}
