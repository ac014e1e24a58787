package console

const (
	SessionStateKey = "session_state:%s"
	SessionDataKey  = "session_data:%s"
)

const (
	StateWaitingProfitTarget = iota + 1
	StateWaitingStopLoss
	StateWaitingLimitPrice
	StateWaitingTradeSize
	StateWaitingTradeType
)

const (
	msgInvalidUsingDefaults = "Invalid input. Using default values."
	msgInvalidTryAgain      = "Invalid input. Please try again."
	msgSessionTimedOut      = "Session timed out. Starting a new trade."
)
