package dto

import "github.com/shopspring/decimal"

type TradeType string

const (
	TradeTypeBuy  TradeType = "buy"
	TradeTypeSell TradeType = "sell"
)

func (t TradeType) IsValid() bool {
	return t == TradeTypeBuy || t == TradeTypeSell
}

func (t TradeType) String() string {
	return string(t)
}

// Trade is the user's order description. It is passed around by value.
type Trade struct {
	OrderSize    int64           `json:"order_size" validate:"gt=0"`
	LimitPrice   decimal.Decimal `json:"limit_price" validate:"gt=0"`
	TradeType    TradeType       `json:"trade_type"`
	ProfitTarget decimal.Decimal `json:"profit_target" validate:"gt=0"`
	StopLoss     decimal.Decimal `json:"stop_loss" validate:"gt=0"`
}

// TradeInformation holds the exit prices and projected P/L derived from a Trade.
type TradeInformation struct {
	Trade           Trade           `json:"trade"`
	LimitClose      decimal.Decimal `json:"limit_close"`
	StopLossPrice   decimal.Decimal `json:"stop_loss_price"`
	PotentialProfit decimal.Decimal `json:"potential_profit"`
	PotentialLoss   decimal.Decimal `json:"potential_loss"`
}

// RiskReward is potential profit per unit of potential loss, zero when there is no loss.
func (i TradeInformation) RiskReward() decimal.Decimal {
	if i.PotentialLoss.IsZero() {
		return decimal.Zero
	}
	return i.PotentialProfit.Div(i.PotentialLoss)
}
