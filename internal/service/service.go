package service

import (
	"golang-trade-calculator/pkg/logger"

	goValidator "github.com/go-playground/validator/v10"
)

type Service struct {
	TradingService TradingService
}

func NewService(
	log *logger.Logger,
	validator *goValidator.Validate,
) *Service {
	return &Service{
		TradingService: NewTradingService(log, validator),
	}
}
