package console

import (
	"fmt"
	"strings"

	"golang-trade-calculator/internal/dto"
)

// FormatTradeInformation renders the report printed after each calculation.
func FormatTradeInformation(info *dto.TradeInformation) string {
	var builder strings.Builder

	builder.WriteString("\nDetails:\n")
	builder.WriteString(fmt.Sprintf("Trade Type: %s\n", info.Trade.TradeType))
	builder.WriteString(fmt.Sprintf("Order Size: %d\n", info.Trade.OrderSize))
	builder.WriteString(fmt.Sprintf("Limit Price: %s\n", info.Trade.LimitPrice))

	builder.WriteString("\nSuggestions:\n")
	builder.WriteString(fmt.Sprintf("Limit Close: %s\n", info.LimitClose))
	builder.WriteString(fmt.Sprintf("Stop Loss: %s\n", info.StopLossPrice))
	builder.WriteString(fmt.Sprintf("Potential Profit: %s\n", info.PotentialProfit))
	builder.WriteString(fmt.Sprintf("Potential Loss: %s\n", info.PotentialLoss))
	builder.WriteString(fmt.Sprintf("Risk/Reward: %s\n", info.RiskReward().Round(2)))
	return builder.String()
}
