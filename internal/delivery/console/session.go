package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang-trade-calculator/config"
	"golang-trade-calculator/internal/dto"
	"golang-trade-calculator/internal/service"
	"golang-trade-calculator/pkg/cache"
	"golang-trade-calculator/pkg/logger"
	"golang-trade-calculator/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxLineSize caps a single line of input.
const maxLineSize = 1024 * 1024

// tradeDraft is the part of a trade entered so far.
type tradeDraft struct {
	LimitPrice decimal.Decimal
	OrderSize  int64
}

// Session runs the prompt loop: the two fractions once, then limit price,
// trade size and trade type for as many trades as the user enters.
type Session struct {
	id             string
	cfg            *config.Config
	log            *logger.Logger
	in             io.Reader
	out            io.Writer
	inmemoryCache  cache.Cache
	tradingService service.TradingService

	settingsDone bool
	profitTarget decimal.Decimal
	stopLoss     decimal.Decimal
}

func NewSession(
	cfg *config.Config,
	log *logger.Logger,
	in io.Reader,
	out io.Writer,
	inmemoryCache cache.Cache,
	tradingService service.TradingService,
) *Session {
	id := uuid.NewString()
	return &Session{
		id:             id,
		cfg:            cfg,
		log:            log.With(logger.StringField("session_id", id)),
		in:             in,
		out:            out,
		inmemoryCache:  inmemoryCache,
		tradingService: tradingService,
	}
}

// Run blocks until the input is exhausted or ctx is cancelled. Neither is an
// error; failing to read the input is.
func (s *Session) Run(ctx context.Context) error {
	ctx = logger.NewContext(ctx, s.log)
	defer s.resetState()

	// readErr is written before lines is closed.
	var readErr error
	lines := make(chan string)
	utils.GoSafe(s.log, func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr = scanner.Err()
	})

	s.setState(StateWaitingProfitTarget)
	s.prompt()

	for {
		select {
		case <-ctx.Done():
			s.println("")
			s.log.InfoContext(ctx, "Session cancelled")
			return nil
		case line, ok := <-lines:
			if !ok {
				s.println("")
				if readErr != nil {
					s.log.ErrorContext(ctx, "Failed to read input", logger.ErrorField(readErr))
					return fmt.Errorf("read input: %w", readErr)
				}
				return nil
			}
			s.handleInput(ctx, line)
			s.prompt()
		}
	}
}

func (s *Session) handleInput(ctx context.Context, text string) {
	state, ok := cache.GetFromCache[int](s.inmemoryCache, fmt.Sprintf(SessionStateKey, s.id))
	if !ok {
		s.log.InfoContext(ctx, "Session state expired")
		s.println(msgSessionTimedOut)
		s.restartTrade()
		return
	}

	switch state {
	case StateWaitingProfitTarget:
		profitTarget, err := dto.ParsePositiveDecimal(dto.FieldProfitTarget, text)
		if err != nil {
			s.useDefaultFractions(ctx, err)
			return
		}
		s.profitTarget = profitTarget
		s.setState(StateWaitingStopLoss)

	case StateWaitingStopLoss:
		stopLoss, err := dto.ParsePositiveDecimal(dto.FieldStopLoss, text)
		if err != nil {
			s.useDefaultFractions(ctx, err)
			return
		}
		s.stopLoss = stopLoss
		s.settingsDone = true
		s.setState(StateWaitingLimitPrice)

	case StateWaitingLimitPrice:
		price, err := dto.ParsePositiveDecimal(dto.FieldLimitPrice, text)
		if err != nil {
			s.reportInvalid(ctx, state, err)
			return
		}
		s.saveDraft(&tradeDraft{LimitPrice: price})
		s.setState(StateWaitingTradeSize)

	case StateWaitingTradeSize:
		size, err := dto.ParseOrderSize(text)
		if err != nil {
			s.reportInvalid(ctx, state, err)
			return
		}
		draft, ok := s.draft()
		if !ok {
			s.println(msgSessionTimedOut)
			s.restartTrade()
			return
		}
		draft.OrderSize = size
		s.saveDraft(draft)
		s.setState(StateWaitingTradeType)

	case StateWaitingTradeType:
		draft, ok := s.draft()
		if !ok {
			s.println(msgSessionTimedOut)
			s.restartTrade()
			return
		}
		trade := dto.Trade{
			OrderSize:    draft.OrderSize,
			LimitPrice:   draft.LimitPrice,
			TradeType:    dto.TradeType(strings.TrimSpace(text)),
			ProfitTarget: s.profitTarget,
			StopLoss:     s.stopLoss,
		}
		info, err := s.tradingService.CalculateTradeParameters(ctx, trade)
		if err != nil {
			s.reportInvalid(ctx, state, err)
			return
		}
		s.println(FormatTradeInformation(info))
		s.restartTrade()

	default:
		s.log.WarnContext(ctx, "Unknown session state", logger.IntField("state", state))
		s.restartTrade()
	}
}

func (s *Session) prompt() {
	state, _ := cache.GetFromCache[int](s.inmemoryCache, fmt.Sprintf(SessionStateKey, s.id))
	switch state {
	case StateWaitingProfitTarget:
		s.printf("Enter the profit target as decimal (default %s): ", s.cfg.Calculator.ProfitTarget())
	case StateWaitingStopLoss:
		s.printf("Enter the stop loss as decimal (default %s): ", s.cfg.Calculator.StopLoss())
	case StateWaitingLimitPrice:
		s.printf("Enter the limit price: ")
	case StateWaitingTradeSize:
		s.printf("Enter the trade size: ")
	case StateWaitingTradeType:
		s.printf("Enter the trade type (buy/sell): ")
	}
}

// useDefaultFractions replaces both fractions with the configured defaults,
// even when only the stop loss was malformed.
func (s *Session) useDefaultFractions(ctx context.Context, err error) {
	s.log.InfoContext(ctx, "Invalid fraction, using defaults", logger.ErrorField(err))
	s.println(msgInvalidUsingDefaults)
	s.profitTarget = s.cfg.Calculator.ProfitTarget()
	s.stopLoss = s.cfg.Calculator.StopLoss()
	s.settingsDone = true
	s.setState(StateWaitingLimitPrice)
}

// reportInvalid keeps the session on the same prompt.
func (s *Session) reportInvalid(ctx context.Context, state int, err error) {
	s.log.InfoContext(ctx, "Invalid input", logger.IntField("state", state), logger.ErrorField(err))
	s.println(msgInvalidTryAgain)
	s.println(err.Error())
	if draft, ok := s.draft(); ok {
		s.saveDraft(draft)
	}
	s.setState(state)
}

func (s *Session) restartTrade() {
	s.inmemoryCache.Delete(fmt.Sprintf(SessionDataKey, s.id))
	if !s.settingsDone {
		s.setState(StateWaitingProfitTarget)
		return
	}
	s.setState(StateWaitingLimitPrice)
}

func (s *Session) setState(state int) {
	s.inmemoryCache.Set(fmt.Sprintf(SessionStateKey, s.id), state, s.cfg.Cache.SessionStateExpDuration)
}

func (s *Session) draft() (*tradeDraft, bool) {
	return cache.GetFromCache[*tradeDraft](s.inmemoryCache, fmt.Sprintf(SessionDataKey, s.id))
}

func (s *Session) saveDraft(draft *tradeDraft) {
	s.inmemoryCache.Set(fmt.Sprintf(SessionDataKey, s.id), draft, s.cfg.Cache.SessionStateExpDuration)
}

func (s *Session) resetState() {
	s.inmemoryCache.Delete(fmt.Sprintf(SessionStateKey, s.id))
	s.inmemoryCache.Delete(fmt.Sprintf(SessionDataKey, s.id))
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}
