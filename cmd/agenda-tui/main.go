// Command agenda-tui abre a agenda de agendamentos no terminal.
//
// Os dados ficam só em memória, como no painel web: fechar o programa
// descarta os agendamentos.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/config"
	domain "github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/logging"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/notify"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/schedule"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/timezone"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/tui"
)

var (
	logFile  string
	vetLabel string
	tzName   string
)

var rootCmd = &cobra.Command{
	Use:          "agenda-tui",
	Short:        "Agenda Unicapital no terminal",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "grava logs neste arquivo (desligado por padrão)")
	rootCmd.Flags().StringVar(&vetLabel, "vet-label", "", "rótulo inicial da aba Veterinário")
	rootCmd.Flags().StringVar(&tzName, "timezone", timezone.DefaultTimezone, "fuso horário das datas")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg := config.Load()

	logger := zap.NewNop()
	if logFile != "" {
		l, err := logging.BuildTo(cfg.LogLevel, cfg.LogFormat, logFile)
		if err != nil {
			return err
		}
		logger = l
	}
	logging.Set(logger)
	defer logging.Sync()

	inbox := notify.NewInbox(0)
	s := schedule.New(schedule.Options{
		NotifierFor: func(domain.Category) notify.Notifier { return inbox },
		Logger:      logger,
		Location:    timezone.Location(tzName),
		Now:         func() time.Time { return timezone.NowIn(tzName) },
		Labels:      map[domain.Category]string{domain.CategoryVet: vetLabel},
	})

	logger.Info("tui started", zap.String("timezone", tzName))

	if _, err := tea.NewProgram(tui.New(s, inbox), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
