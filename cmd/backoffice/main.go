package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/priyanshu461/gym-backoffice/internal/config"
	"github.com/priyanshu461/gym-backoffice/internal/member"
	"github.com/priyanshu461/gym-backoffice/internal/routine"
	"github.com/priyanshu461/gym-backoffice/pkg/utils"
)

// Консоль оператора: list / show <id> / export <id> [файл].
// Работает через то же REST API, что и веб-панель.
func main() {
	if err := godotenv.Load(); err != nil {
		utils.Log.Info("No .env file found")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		utils.Log.Error("Failed to load config: " + err.Error())
		os.Exit(1)
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:8080"
	}

	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctrl := routine.NewController(routine.NewHTTPService(cfg.API.BaseURL), routine.NewStore())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := ctrl.LoadAll(ctx); err != nil {
		utils.Log.Error("Failed to load routines: " + err.Error())
		os.Exit(1)
	}

	switch args[0] {
	case "list":
		for _, r := range ctrl.Store().List() {
			fmt.Printf("%s  %-30s %-10s %-12s дней: %d\n", r.ID, r.Name, r.Goal, r.Difficulty, len(r.Days))
		}
	case "show":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		if err := ctrl.SelectForView(args[1]); err != nil {
			utils.Log.Error(err.Error())
			os.Exit(1)
		}
		r, _ := ctrl.Selected()
		fmt.Printf("%s (%s, %s)\n", r.Name, r.Goal, r.Difficulty)
		if r.AssignedMemberID != "" {
			name, err := member.NewDirectory(cfg.API.BaseURL).Resolve(ctx, r.AssignedMemberID)
			if err != nil || name == "" {
				// слабая ссылка: клиента могли удалить
				name = r.AssignedMemberID
			}
			fmt.Println("Назначена клиенту: " + name)
		}
		for _, d := range r.Days {
			fmt.Println("  " + d.Day)
			for _, e := range d.Exercises {
				fmt.Printf("    %s: %s x %s, отдых %s\n", e.Name, e.Sets, e.Reps, e.Rest)
			}
		}
	case "export":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		r, ok := ctrl.Store().Get(args[1])
		if !ok {
			utils.Log.Error("Routine not found: " + args[1])
			os.Exit(1)
		}
		name := routine.ExportFilename(r.Name)
		if len(args) > 2 {
			name = args[2]
		}
		text, err := routine.MarshalCSV(routine.ToRows(r))
		if err != nil {
			utils.Log.Error("Export failed: " + err.Error())
			os.Exit(1)
		}
		if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
			utils.Log.Error("Write failed: " + err.Error())
			os.Exit(1)
		}
		utils.Log.Info("Exported to " + name)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "использование: backoffice list | show <id> | export <id> [файл]")
}
