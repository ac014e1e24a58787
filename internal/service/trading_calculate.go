package service

import (
	"context"
	"errors"
	"fmt"
	"golang-trade-calculator/internal/dto"
	"golang-trade-calculator/pkg/logger"
	"strings"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type TradingService interface {
	CalculateTradeParameters(ctx context.Context, trade dto.Trade) (*dto.TradeInformation, error)
}

type tradingService struct {
	log       *logger.Logger
	validator *goValidator.Validate
}

func NewTradingService(log *logger.Logger, validator *goValidator.Validate) TradingService {
	return &tradingService{
		log:       log,
		validator: validator,
	}
}

// CalculateTradeParameters derives the limit close and stop loss prices of a
// trade and the profit or loss realised at each of them.
func (s *tradingService) CalculateTradeParameters(ctx context.Context, trade dto.Trade) (*dto.TradeInformation, error) {
	if !trade.TradeType.IsValid() {
		return nil, fmt.Errorf("%w: trade type must be either 'buy' or 'sell', got %q", dto.ErrInvalidArgument, trade.TradeType)
	}
	if err := s.validate(trade); err != nil {
		return nil, err
	}

	one := decimal.NewFromInt(1)
	size := decimal.NewFromInt(trade.OrderSize)

	var limitClose, stopLossPrice decimal.Decimal
	switch trade.TradeType {
	case dto.TradeTypeBuy:
		limitClose = trade.LimitPrice.Mul(one.Add(trade.ProfitTarget))
		stopLossPrice = trade.LimitPrice.Mul(one.Sub(trade.StopLoss))
	case dto.TradeTypeSell:
		limitClose = trade.LimitPrice.Mul(one.Sub(trade.ProfitTarget))
		stopLossPrice = trade.LimitPrice.Mul(one.Add(trade.StopLoss))
	}

	info := &dto.TradeInformation{
		Trade:           trade,
		LimitClose:      limitClose,
		StopLossPrice:   stopLossPrice,
		PotentialProfit: limitClose.Sub(trade.LimitPrice).Abs().Mul(size),
		PotentialLoss:   trade.LimitPrice.Sub(stopLossPrice).Abs().Mul(size),
	}

	s.log.DebugContext(ctx, "Trade parameters calculated",
		logger.StringField("trade_type", trade.TradeType.String()),
		logger.Int64Field("order_size", trade.OrderSize),
		logger.DecimalField("limit_price", trade.LimitPrice),
		logger.DecimalField("limit_close", info.LimitClose),
		logger.DecimalField("stop_loss_price", info.StopLossPrice),
		logger.DecimalField("potential_profit", info.PotentialProfit),
		logger.DecimalField("potential_loss", info.PotentialLoss),
	)

	return info, nil
}

func (s *tradingService) validate(trade dto.Trade) error {
	err := s.validator.Struct(trade)
	if err == nil {
		return nil
	}

	var verrs goValidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", dto.ErrInvalidArgument, strings.Join(fields, ", "))
}
