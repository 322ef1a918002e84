package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/mobility/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/mobility/internal/catalog"
	catalogStore "github.com/MrJamesThe3rd/mobility/internal/catalog/store"
	"github.com/MrJamesThe3rd/mobility/internal/config"
	"github.com/MrJamesThe3rd/mobility/internal/database"
	"github.com/MrJamesThe3rd/mobility/internal/employee"
	"github.com/MrJamesThe3rd/mobility/internal/employee/upstream"
	"github.com/MrJamesThe3rd/mobility/internal/importer"
	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

type model struct {
	catalog         *catalog.Catalog
	importService   *importer.Service
	employeeService *employee.Service

	currentView View

	importView   view.ImportModel
	mobilityView view.MobilityModel
}

type View int

const (
	ViewMenu     View = 0
	ViewImport   View = 1
	ViewMobility View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cat, err := loadCatalog(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	impSvc := importer.NewService(cat)
	empSvc := employee.NewService(
		upstream.New(cfg.Employees.URL, cfg.App.Name, cfg.Employees.Secret, cfg.Employees.Timeout),
	)

	return model{
		catalog:         cat,
		importService:   impSvc,
		employeeService: empSvc,
		currentView:     ViewMenu,
		importView:      view.NewImportModel(impSvc),
	}
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	src := catalog.Source(cfg.Catalog.Source)
	if src != catalog.SourcePostgres {
		return catalog.Load(ctx, src, cfg.Catalog.File, nil)
	}

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	return catalog.Load(ctx, src, cfg.Catalog.File, catalogStore.New(db))
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.importService)

				return m, m.importView.Init()
			case "2":
				m.currentView = ViewMobility
				m.mobilityView = view.NewMobilityModel(m.employeeService, m.catalog, mobility.NewForm(), nil)

				return m, m.mobilityView.Init()
			}
		}
	case view.ImportedMsg:
		m.currentView = ViewMobility
		m.mobilityView = view.NewMobilityModel(m.employeeService, m.catalog, msg.Form, msg.Warnings)

		return m, m.mobilityView.Init()
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	case ViewMobility:
		var newModel tea.Model
		newModel, cmd = m.mobilityView.Update(msg)
		m.mobilityView = newModel.(view.MobilityModel)
	}

	return m, cmd
}

func (m model) View() string {
	var (
		body string
		help string
	)

	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Mobility TUI\n\n" +
				"1. Import CSV\n" +
				"2. New mobility\n\n" +
				"q. Quit",
		)
	case ViewImport:
		body, help = m.importView.View(), m.importView.ShortHelp()
	case ViewMobility:
		body, help = m.mobilityView.View(), m.mobilityView.ShortHelp()
	default:
		return "Unknown View"
	}

	return body + "\n" + lipgloss.NewStyle().Faint(true).PaddingLeft(2).Render(help)
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
