package cmd

import (
	"golang-trade-calculator/config"
	"golang-trade-calculator/internal/service"
	"golang-trade-calculator/pkg/cache"
	"golang-trade-calculator/pkg/logger"
	"golang-trade-calculator/pkg/validation"

	goValidator "github.com/go-playground/validator/v10"
)

type AppDependency struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	cache     cache.Cache
	services  *service.Service
}

func NewAppDependency() (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	validator := validation.New()
	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: validator,
		cache:     cache.NewCache(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval),
		services:  service.NewService(log, validator),
	}, nil
}

func (d *AppDependency) Close() {
	d.log.Debug("Closing app dependency")
	d.cache.Flush()
	_ = d.log.Sync()
}
