package stats

import (
	"context"
	"sort"
	"time"

	"github.com/BruksfildServices01/unicapital-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/models"
	"github.com/BruksfildServices01/unicapital-scheduler/internal/timezone"
)

const RecentClientsLimit = 5

var monthNames = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// palette das fatias do gráfico de serviços
var palette = []string{
	"#8B5CF6", "#EC4899", "#10B981", "#3B82F6",
	"#F59E0B", "#EF4444", "#6366F1", "#14B8A6",
	"#F97316", "#8B5CF6", "#06B6D4", "#D946EF",
}

type ClientRepository interface {
	CountClients(ctx context.Context) (int64, error)
	CountClientsCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	ListRecentClients(ctx context.Context, limit int) ([]models.Client, error)
}

// ======================================================
// OUTPUT
// ======================================================

type MonthlyGrowth struct {
	Month   string `json:"month"`
	Clients int64  `json:"clients"`
}

type ServiceType struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type RecentClient struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Services  int    `json:"services"`
	LastVisit string `json:"lastVisit"`
}

type ClientStats struct {
	TotalClients        int64           `json:"totalClients"`
	TotalServices       int64           `json:"totalServices"`
	NewClientsThisMonth int64           `json:"newClientsThisMonth"`
	MonthlyGrowth       []MonthlyGrowth `json:"monthlyGrowth"`
	ServiceTypes        []ServiceType   `json:"serviceTypes"`
	RecentClients       []RecentClient  `json:"recentClients"`
}

// ======================================================
// USE CASE
// ======================================================

type GetClientStats struct {
	repo ClientRepository
	loc  *time.Location
	now  func() time.Time
}

func NewGetClientStats(repo ClientRepository, loc *time.Location, now func() time.Time) *GetClientStats {
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}
	if now == nil {
		now = time.Now
	}
	return &GetClientStats{repo: repo, loc: loc, now: now}
}

// Execute monta o painel de clientes. appointments são os agendamentos da
// sessão, usados na distribuição por serviço.
func (uc *GetClientStats) Execute(ctx context.Context, appointments []appointment.Appointment) (ClientStats, error) {
	now := uc.now().In(uc.loc)

	total, err := uc.repo.CountClients(ctx)
	if err != nil {
		return ClientStats{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, uc.loc)
	newThisMonth, err := uc.repo.CountClientsCreatedBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return ClientStats{}, err
	}

	growth := make([]MonthlyGrowth, 0, len(monthNames))
	for m := 0; m < len(monthNames); m++ {
		start := time.Date(now.Year(), time.Month(m+1), 1, 0, 0, 0, 0, uc.loc)
		n, err := uc.repo.CountClientsCreatedBetween(ctx, start, start.AddDate(0, 1, 0))
		if err != nil {
			return ClientStats{}, err
		}
		growth = append(growth, MonthlyGrowth{Month: monthNames[m], Clients: n})
	}

	recent, err := uc.repo.ListRecentClients(ctx, RecentClientsLimit)
	if err != nil {
		return ClientStats{}, err
	}

	// cada cliente conta como um atendimento
	out := ClientStats{
		TotalClients:        total,
		TotalServices:       total,
		NewClientsThisMonth: newThisMonth,
		MonthlyGrowth:       growth,
		ServiceTypes:        ServiceTypes(appointments),
		RecentClients:       make([]RecentClient, 0, len(recent)),
	}

	for _, c := range recent {
		out.RecentClients = append(out.RecentClients, RecentClient{
			ID:        c.ID,
			Name:      c.Name,
			Phone:     c.Phone,
			Services:  1,
			LastVisit: timezone.Format(c.CreatedAt.In(uc.loc), timezone.ShortDateLayout),
		})
	}

	return out, nil
}

// ServiceTypes conta agendamentos por serviço, do maior para o menor
// (empate por nome).
func ServiceTypes(appointments []appointment.Appointment) []ServiceType {
	counts := map[string]int{}
	for _, ap := range appointments {
		if ap.Service == "" {
			continue
		}
		counts[ap.Service]++
	}

	out := make([]ServiceType, 0, len(counts))
	for name, n := range counts {
		out = append(out, ServiceType{Name: name, Value: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})

	for i := range out {
		out[i].Color = palette[i%len(palette)]
	}
	return out
}
