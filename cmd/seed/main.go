package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/click-ai/cal.com/internal/config"
	"github.com/click-ai/cal.com/internal/database"
	"github.com/click-ai/cal.com/internal/fixtures"
	"github.com/click-ai/cal.com/internal/models"
)

type CLI struct {
	db      *gorm.DB
	factory *fixtures.Factory
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.App.Env == "production" {
		log.Fatal("seed refuses to run with APP_ENV=production")
	}

	// Initialize database
	db, err := database.Initialize(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	cli := &CLI{
		db:      db.DB(),
		factory: fixtures.NewFactory(db.DB(), cfg.Seed),
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "user":
		cli.seedUser(args)
	case "team":
		cli.seedTeam(args)
	case "routing-form":
		cli.seedRoutingForm(args)
	case "db-status":
		cli.checkDatabaseStatus()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Testdata Seed CLI")
	fmt.Println()
	fmt.Println("Usage: seed <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  user          Create a test user with default event types and workflows")
	fmt.Println("  team          Create a test user together with a team scenario")
	fmt.Println("  routing-form  Create a test user with the standard routing form attached")
	fmt.Println("  db-status     Check database connection status")
	fmt.Println()
	fmt.Println("Use 'seed <command> -h' for command-specific help")
}

func (cli *CLI) seedUser(args []string) {
	var (
		username  string
		exact     bool
		email     string
		password  string
		timeZone  string
		locale    string
		onboarded bool
	)

	fs := flag.NewFlagSet("user", flag.ExitOnError)
	fs.StringVar(&username, "username", "", "Base username (default: user)")
	fs.BoolVar(&exact, "exact", false, "Use the username verbatim, without worker namespacing")
	fs.StringVar(&email, "email", "", "Email address (default: derived from username)")
	fs.StringVar(&password, "password", "", "Plaintext password (default: the username)")
	fs.StringVar(&timeZone, "timezone", "", "IANA time zone (default: Europe/London)")
	fs.StringVar(&locale, "locale", "", "Locale (default: en)")
	fs.BoolVar(&onboarded, "onboarded", true, "Mark onboarding completed and attach a default schedule")

	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	opts := &fixtures.UserOptions{
		Username:            username,
		UseExactUsername:    exact,
		Email:               email,
		Password:            password,
		TimeZone:            timeZone,
		Locale:              locale,
		CompletedOnboarding: &onboarded,
	}

	user, err := cli.factory.CreateTestUser(context.Background(), opts, fixtures.ScenarioOptions{})
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	printUser(user)
}

func (cli *CLI) seedTeam(args []string) {
	var (
		username       string
		role           string
		teammates      int
		schedulingType string
		isOrg          bool
		orgVerified    bool
		hasSubteam     bool
		unpublished    bool
	)

	fs := flag.NewFlagSet("team", flag.ExitOnError)
	fs.StringVar(&username, "username", "", "Base username for the team owner")
	fs.StringVar(&role, "role", "", "Membership role of the owner (OWNER, ADMIN, MEMBER; default OWNER)")
	fs.IntVar(&teammates, "teammates", 0, "Number of additional accepted members to create")
	fs.StringVar(&schedulingType, "scheduling-type", "", "Team event scheduling type (COLLECTIVE or ROUND_ROBIN)")
	fs.BoolVar(&isOrg, "org", false, "Create an organization instead of a plain team")
	fs.BoolVar(&orgVerified, "org-verified", false, "Mark the organization as verified")
	fs.BoolVar(&hasSubteam, "subteam", false, "Attach a child team (organizations only)")
	fs.BoolVar(&unpublished, "unpublished", false, "Create the team without a live slug")

	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	scenario := fixtures.ScenarioOptions{
		HasTeam:        true,
		TeamRole:       models.MembershipRole(role),
		SchedulingType: models.SchedulingType(schedulingType),
		IsOrg:          isOrg,
		IsOrgVerified:  orgVerified,
		HasSubteam:     hasSubteam,
		IsUnpublished:  unpublished,
	}
	for i := 0; i < teammates; i++ {
		scenario.Teammates = append(scenario.Teammates, fixtures.UserOptions{})
	}

	user, err := cli.factory.CreateTestUser(context.Background(), &fixtures.UserOptions{Username: username}, scenario)
	if err != nil {
		log.Fatalf("Failed to create team scenario: %v", err)
	}

	printUser(user)

	// The returned record predates the team scenario, so memberships are
	// loaded separately.
	var memberships []models.Membership
	cli.db.Where("user_id = ?", user.ID).Find(&memberships)
	for _, m := range memberships {
		fmt.Printf("   Team #%d: role=%s accepted=%v\n", m.TeamID, m.Role, m.Accepted)
	}
}

func (cli *CLI) seedRoutingForm(args []string) {
	var username string

	fs := flag.NewFlagSet("routing-form", flag.ExitOnError)
	fs.StringVar(&username, "username", "", "Base username for the form owner")

	if err := fs.Parse(args); err != nil {
		log.Fatal(err)
	}

	scenario := fixtures.ScenarioOptions{SeedRoutingForms: true}

	user, err := cli.factory.CreateTestUser(context.Background(), &fixtures.UserOptions{Username: username}, scenario)
	if err != nil {
		log.Fatalf("Failed to create user with routing form: %v", err)
	}

	printUser(user)
	for _, f := range user.RoutingForms {
		fmt.Printf("   Routing form: %s (%s) fields=%d routes=%d\n", f.Name, f.UID, len(f.Fields), len(f.Routes))
	}
}

func (cli *CLI) checkDatabaseStatus() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := cli.db.DB()
	if err != nil {
		fmt.Printf("❌ Failed to get database connection: %v\n", err)
		os.Exit(1)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		fmt.Printf("❌ Database connection failed: %v\n", err)
		os.Exit(1)
	}

	stats := sqlDB.Stats()

	fmt.Println("Database Status:")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("✅ Connection: OK\n")
	fmt.Printf("   Open Connections:     %d\n", stats.OpenConnections)
	fmt.Printf("   In Use:               %d\n", stats.InUse)
	fmt.Printf("   Idle:                 %d\n", stats.Idle)
	fmt.Printf("   Max Open Connections: %d\n", stats.MaxOpenConnections)

	var tables []string
	cli.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables)
	fmt.Printf("\nTables (%d):\n", len(tables))
	for _, table := range tables {
		var count int64
		cli.db.Table(table).Count(&count)
		fmt.Printf("  • %-30s %d records\n", table, count)
	}
}

func printUser(user *models.User) {
	fmt.Printf("✅ User created successfully!\n")
	fmt.Printf("   ID: %d\n", user.ID)
	fmt.Printf("   Username: %s\n", user.Username)
	fmt.Printf("   Email: %s\n", user.Email)
	fmt.Printf("   Time Zone: %s\n", user.TimeZone)
	fmt.Printf("   Event Types: %d\n", len(user.EventTypes))
	fmt.Printf("   Workflows: %d\n", len(user.Workflows))
	fmt.Printf("   Schedules: %d\n", len(user.Schedules))
}
