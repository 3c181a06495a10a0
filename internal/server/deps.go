package server

import (
	"go.uber.org/zap"

	"github.com/mgdov/eco-place/internal/config"
	"github.com/mgdov/eco-place/internal/handler"
	"github.com/mgdov/eco-place/internal/i18n"
	"github.com/mgdov/eco-place/internal/normalize"
	"github.com/mgdov/eco-place/internal/service"
	"github.com/mgdov/eco-place/internal/snapshot"
	"github.com/mgdov/eco-place/internal/upstream"
)

// Deps holds server dependencies.
type Deps struct {
	Reports    *service.Reports
	Catalog    *i18n.Catalog
	List       *handler.ReportsHandler
	Status     *handler.StatusHandler
	Categories *handler.CategoriesHandler
	Labels     *handler.LabelsHandler
}

// NewDeps wires the service and handlers from the upstream client and
// snapshot store.
func NewDeps(cfg *config.Config, gw *upstream.Client, snaps snapshot.Store, log *zap.Logger) *Deps {
	norm := normalize.New(log.Named("normalize"))
	reports := service.NewReports(gw, snaps, norm, cfg.StatusModel, log.Named("reports"))
	catalog := i18n.NewCatalog(cfg.DefaultLang)

	return &Deps{
		Reports:    reports,
		Catalog:    catalog,
		List:       &handler.ReportsHandler{Reports: reports},
		Status:     &handler.StatusHandler{Reports: reports},
		Categories: &handler.CategoriesHandler{Reports: reports},
		Labels:     &handler.LabelsHandler{Catalog: catalog, Reports: reports},
	}
}
