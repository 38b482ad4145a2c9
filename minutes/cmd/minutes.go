// Operations CLI: schema migration and demo seeding without starting the
// server.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"minutes/minutes/config"
	"minutes/minutes/sources/psql"
	"minutes/minutes/sources/psql/dao"
	"minutes/minutes/sources/psql/models"
	"minutes/minutes/utils/logging"

	"go.uber.org/zap"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	args := os.Args[1:]
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}

	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	switch args[0] {
	case "migrate":
		// NewDatabase already ran the migration; reaching here means it
		// succeeded.
		fmt.Println("schema migrated")
	case "seed":
		if err := seed(ctx, db); err != nil {
			logging.ErrorLogger.Error("seed failed", zap.Error(err))
			os.Exit(1)
		}
		fmt.Println("demo workspace seeded")
	default:
		usage()
		os.Exit(1)
	}
}

func seed(ctx context.Context, db *psql.Database) error {
	userDAO := dao.NewUserDAO(db.DB)
	workspaceDAO := dao.NewWorkspaceDAO(db.DB)

	user, err := userDAO.GetUserByUsername(ctx, "demo")
	if err != nil {
		return err
	}
	if user == nil {
		user, err = userDAO.CreateUser(ctx, "demo", "demo@example.com", nil)
		if err != nil {
			return err
		}
	}
	workspace := &models.Workspace{Name: "Demo Team", OwnerID: user.ID}
	if err := workspaceDAO.CreateWorkspace(ctx, workspace); err != nil {
		return err
	}
	fmt.Println("workspace:", workspace.ID)
	return nil
}

func usage() {
	fmt.Println("minutes usage:")
	fmt.Println("  minutes migrate   # create or update the schema")
	fmt.Println("  minutes seed      # create a demo user and workspace")
}
