package usecase

import (
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/pkg/generation"
)

func slotKey(sc model.Scope, slot string) string {
	return generation.Key(sc.SessionID, string(datasource.PageDashboard), slot)
}
