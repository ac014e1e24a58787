package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang-trade-calculator/internal/delivery/console"
	"golang-trade-calculator/internal/dto"
	"golang-trade-calculator/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type calculateOptions struct {
	price        string
	size         string
	tradeType    string
	profitTarget string
	stopLoss     string
	asJSON       bool
}

type calculateResponse struct {
	*dto.TradeInformation
	RiskReward decimal.Decimal `json:"risk_reward"`
}

func newCalculateCmd() *cobra.Command {
	opts := &calculateOptions{}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate exit prices for one trade without prompting",
		Long: `Calculate the limit close and stop-loss prices for a single trade.

Profit target and stop loss default to the configured values
(calculator.default_profit_target / calculator.default_stop_loss).

Example:
  tradecalc calculate --price 100 --size 10 --type buy
  tradecalc calculate --price 50 --size 5 --type sell --profit-target 0.05 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.price, "price", "", "limit (entry) price")
	cmd.Flags().StringVar(&opts.size, "size", "", "order size in whole units")
	cmd.Flags().StringVar(&opts.tradeType, "type", "", "trade type: buy or sell")
	cmd.Flags().StringVar(&opts.profitTarget, "profit-target", "", "profit target as decimal fraction (default from config)")
	cmd.Flags().StringVar(&opts.stopLoss, "stop-loss", "", "stop loss as decimal fraction (default from config)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func runCalculate(cmd *cobra.Command, opts *calculateOptions) error {
	appDep, err := NewAppDependency()
	if err != nil {
		return err
	}
	defer appDep.Close()

	trade, err := opts.toTrade(appDep)
	if err != nil {
		return err
	}

	ctx := logger.NewContext(cmd.Context(), appDep.log.With(logger.StringField("command", "calculate")))
	info, err := appDep.services.TradingService.CalculateTradeParameters(ctx, trade)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(calculateResponse{TradeInformation: info, RiskReward: info.RiskReward().Round(2)})
	}
	_, err = fmt.Fprint(out, console.FormatTradeInformation(info))
	return err
}

func (o *calculateOptions) toTrade(appDep *AppDependency) (dto.Trade, error) {
	price, err := dto.ParsePositiveDecimal(dto.FieldLimitPrice, o.price)
	if err != nil {
		return dto.Trade{}, err
	}
	size, err := dto.ParseOrderSize(o.size)
	if err != nil {
		return dto.Trade{}, err
	}

	profitTarget := appDep.cfg.Calculator.ProfitTarget()
	if o.profitTarget != "" {
		if profitTarget, err = dto.ParsePositiveDecimal(dto.FieldProfitTarget, o.profitTarget); err != nil {
			return dto.Trade{}, err
		}
	}
	stopLoss := appDep.cfg.Calculator.StopLoss()
	if o.stopLoss != "" {
		if stopLoss, err = dto.ParsePositiveDecimal(dto.FieldStopLoss, o.stopLoss); err != nil {
			return dto.Trade{}, err
		}
	}

	return dto.Trade{
		OrderSize:    size,
		LimitPrice:   price,
		TradeType:    dto.TradeType(strings.TrimSpace(o.tradeType)),
		ProfitTarget: profitTarget,
		StopLoss:     stopLoss,
	}, nil
}
