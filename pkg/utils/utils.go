package utils

import (
	"fmt"
	"golang-trade-calculator/pkg/logger"
)

// GoSafe runs the given function in a new goroutine and recovers from any panic.
func GoSafe(log *logger.Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Panic recovered", logger.StringField("panic", fmt.Sprint(r)))
			}
		}()
		fn()
	}()
}
