package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"room-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "file://migrations", "マイグレーションディレクトリの URL")
	atlasBin := flag.String("atlas", "atlas", "atlas CLI のパス")
	dryRun := flag.Bool("dry-run", false, "適用せずに保留中のマイグレーションを表示する")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", *atlasBin)
	if err != nil {
		logger.Error("atlas クライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: *dir,
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("マイグレーションの適用に失敗しました", "error", err)
		os.Exit(1)
	}

	logger.Info("マイグレーションを適用しました",
		"applied", len(res.Applied),
		"pending", len(res.Pending),
		"current", res.Current,
		"target", res.Target,
		"dry_run", *dryRun)
}
